package audio

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/mohammedhamoda/neurorhythm/internal/game"
	"github.com/pkg/errors"
)

var Format = beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

// extensions are tried in order when looking for a sound
var extensions = []string{".wav", ".mp3"}

// Player plays one shot sounds at times on its own clock. The clock counts
// the samples pulled by the speaker, so it starts at 0 and stays there
// until the device is running.
type Player struct {
	Dir string

	mu         sync.Mutex
	sounds     map[game.Symbol]*beep.Buffer
	background beep.StreamSeekCloser
	ready      bool
	samples    int64
}

type counter struct {
	samples *int64
}

func (c counter) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{}
	}
	atomic.AddInt64(c.samples, int64(len(samples)))
	return len(samples), true
}

func (c counter) Err() error {
	return nil
}

// Init opens the speaker. On failure the player stays silent and its clock
// stays at 0.
func (p *Player) Init() error {
	if err := speaker.Init(Format.SampleRate, Format.SampleRate.N(time.Second/30)); nil != err {
		return errors.Wrap(err, "unable to open audio device")
	}
	p.mu.Lock()
	p.ready = true
	p.mu.Unlock()
	speaker.Play(counter{samples: &p.samples})
	return nil
}

func (p *Player) Deinit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Clear()
		p.ready = false
	}
	if nil != p.background {
		if err := p.background.Close(); nil != err {
			log.Println("unable to close background track", err)
		}
		p.background = nil
	}
}

func (p *Player) Now() float64 {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready {
		return 0
	}
	return float64(atomic.LoadInt64(&p.samples)) / float64(Format.SampleRate)
}

func find(dir string, symbol game.Symbol) (string, error) {
	for _, ext := range extensions {
		p := filepath.Join(dir, string(symbol)+ext)
		if _, err := os.Stat(p); nil == err {
			return p, nil
		}
	}
	return "", errors.Errorf("no sound for %s in %s", symbol, dir)
}

func decode(file string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, beep.Format{}, errors.Wrapf(err, "unable to open %s", file)
	}
	var s beep.StreamSeekCloser
	var format beep.Format
	if filepath.Ext(file) == ".mp3" {
		s, format, err = mp3.Decode(f)
	} else {
		s, format, err = wav.Decode(f)
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, errors.Wrapf(err, "unable to decode %s", file)
	}
	return s, format, nil
}

func resample(s beep.Streamer, from beep.SampleRate) beep.Streamer {
	if from == Format.SampleRate {
		return s
	}
	return beep.Resample(4, from, Format.SampleRate, s)
}

func load(file string) (*beep.Buffer, error) {
	s, format, err := decode(file)
	if nil != err {
		return nil, err
	}
	defer s.Close()

	buf := beep.NewBuffer(Format)
	buf.Append(resample(s, format.SampleRate))
	if err := s.Err(); nil != err {
		return nil, errors.Wrapf(err, "unable to read %s", file)
	}
	return buf, nil
}

// Load decodes a sound per symbol. Symbols that fail to load are logged and
// stay silent. It returns how many loaded.
func (p *Player) Load(symbols []game.Symbol) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if nil == p.sounds {
		p.sounds = map[game.Symbol]*beep.Buffer{}
	}
	for _, symbol := range symbols {
		file, err := find(p.Dir, symbol)
		if nil == err {
			var buf *beep.Buffer
			buf, err = load(file)
			if nil == err {
				p.sounds[symbol] = buf
				continue
			}
		}
		log.Println("sound disabled:", err)
	}
	return len(p.sounds)
}

// delay is the number of samples of silence before a sound due at "at"
func delay(now, at float64) int {
	if at <= now {
		return 0
	}
	return Format.SampleRate.N(time.Duration((at - now) * float64(time.Second)))
}

// Schedule queues the symbol's sound to start at the given clock time.
// Unknown symbols and a closed device are ignored.
func (p *Player) Schedule(symbol game.Symbol, at float64) {
	p.mu.Lock()
	buf, ok := p.sounds[symbol]
	ready := p.ready
	p.mu.Unlock()
	if !ok || !ready {
		return
	}
	wait := delay(p.Now(), at)
	speaker.Play(beep.Seq(beep.Silence(wait), buf.Streamer(0, buf.Len())))
}

// Background loops a track under the notes. Volume is in halvings, so -2
// plays it at a quarter of its level.
func (p *Player) Background(file string, volume float64) error {
	s, format, err := decode(file)
	if nil != err {
		return err
	}
	p.mu.Lock()
	if !p.ready {
		p.mu.Unlock()
		s.Close()
		return errors.New("audio device is not open")
	}
	p.background = s
	p.mu.Unlock()

	speaker.Play(&effects.Volume{
		Streamer: resample(beep.Loop(-1, s), format.SampleRate),
		Base:     2,
		Volume:   volume,
	})
	return nil
}
