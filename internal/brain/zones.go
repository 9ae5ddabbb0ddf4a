package brain

import (
	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

var notes = map[game.Role]string{
	game.Schizophrenia: "Temporal accuracy reflects the degree to which external rhythmic structure organizes perceptual timing.",
	game.Autism:        "Accuracy reflects the effectiveness of structured pattern integration rather than tolerance to randomness.",
	game.Depression:    "Accuracy reflects the degree of activation and maintenance of rhythmic engagement.",
	game.ADHD:          "Accuracy reflects the efficiency of attention regulation under temporal load.",
	game.Anxiety:       "Accuracy reflects the balance between anticipatory monitoring and rhythmic stability.",
}

var defaultZones = []State{
	{
		Limit:          20,
		Name:           "Low Synchronization",
		Features:       []string{"Frequent misses", "High variability", "Difficulty tracking beat"},
		Interpretation: "Performance indicates significant difficulty aligning with the external rhythm.",
	},
	{
		Limit:          50,
		Name:           "Inconsistent Tracking",
		Features:       []string{"Intermittent hits", "Variable timing", "Reactive rather than predictive"},
		Interpretation: "Rhythm tracking is emerging but lacks consistency.",
	},
	{
		Limit:          80,
		Name:           "Stable Performance",
		Features:       []string{"Consistent hits", "Good timing", "Steady engagement"},
		Interpretation: "Demonstrates solid ability to maintain rhythmic synchronization.",
	},
	{
		Limit:          100,
		Name:           "Optimal Synchronization",
		Features:       []string{"High precision", "Predictive timing", "Flow state achieved"},
		Interpretation: "Excellent temporal regulation and motor control.",
	},
}

var zones = map[game.Role][]State{
	game.Schizophrenia: {
		{
			Limit: 20,
			Name:  "Severe Temporal Fragmentation",
			Features: []string{
				"Breakdown of sequential timing control",
				"Dominance of internally generated percepts",
				"Minimal alignment with external rhythmic structure",
				"High moment-to-moment variability",
			},
			Interpretation: "External rhythmic information fails to constrain internal timing processes, resulting in fragmented sensory–motor coordination consistent with severe perceptual interference.",
		},
		{
			Limit: 40,
			Name:  "Unstable External Anchoring",
			Features: []string{
				"Intermittent synchronization with rhythm",
				"Short-lived predictive timing windows",
				"Frequent loss of beat continuity",
			},
			Interpretation: "External temporal cues are intermittently processed but fail to remain dominant, leading to unstable rhythm following.",
		},
		{
			Limit: 60,
			Name:  "Emerging Temporal Structuring",
			Features: []string{
				"Improved alignment with rhythmic cues",
				"Reduced perceptual fragmentation",
				"Partial maintenance of beat continuity",
			},
			Interpretation: "Temporal organization begins to stabilize, allowing more reliable engagement with external timing signals.",
		},
		{
			Limit: 80,
			Name:  "Coherent Temporal Tracking",
			Features: []string{
				"Sustained beat synchronization",
				"Reduced internal disruption",
				"Consistent timing prediction",
			},
			Interpretation: "External temporal structure is effectively integrated, supporting coherent sensory–motor coordination.",
		},
		{
			Limit: 100,
			Name:  "Highly Organized Temporal Control",
			Features: []string{
				"Precise rhythmic entrainment",
				"Strong dominance of external timing cues",
				"Minimal perceptual interference",
			},
			Interpretation: "Temporal systems demonstrate high coherence and stability, enabling accurate and sustained synchronization.",
		},
	},
	game.Autism: {
		{
			Limit: 20,
			Name:  "Pattern Overload",
			Features: []string{
				"Difficulty extracting stable rhythmic rules",
				"Excessive focus on micro-variations",
				"Reduced global pattern integration",
			},
			Interpretation: "The system prioritizes local details over global rhythm structure, limiting effective pattern regulation.",
		},
		{
			Limit: 40,
			Name:  "Inconsistent Rule Formation",
			Features: []string{
				"Partial recognition of rhythmic regularities",
				"Disruption when structure shifts",
				"Narrow tolerance for variation",
			},
			Interpretation: "Pattern rules are detected but not robustly generalized across changing conditions.",
		},
		{
			Limit: 60,
			Name:  "Structured Pattern Engagement",
			Features: []string{
				"Reliable tracking of predictable rhythm",
				"Sensitivity to rule-consistent change",
				"Stable engagement when structure is preserved",
			},
			Interpretation: "Rhythmic processing benefits from internally consistent pattern evolution.",
		},
		{
			Limit: 80,
			Name:  "Adaptive Pattern Integration",
			Features: []string{
				"Strong internal representation of rhythm rules",
				"Effective handling of structured variation",
				"Sustained engagement",
			},
			Interpretation: "Pattern regulation systems efficiently integrate predictable change.",
		},
		{
			Limit: 100,
			Name:  "Optimized Rule-Based Synchronization",
			Features: []string{
				"Precise pattern tracking",
				"High tolerance for structured variation",
				"Efficient rhythm abstraction",
			},
			Interpretation: "Rhythmic behavior reflects strong rule-based integration and adaptive control.",
		},
	},
	game.Depression: {
		{
			Limit: 20,
			Name:  "Marked Engagement Suppression",
			Features: []string{
				"Reduced initiation of rhythmic responses",
				"Prolonged response latency",
				"Low interaction energy",
			},
			Interpretation: "External rhythmic input fails to sufficiently activate engagement mechanisms.",
		},
		{
			Limit: 40,
			Name:  "Delayed Engagement Onset",
			Features: []string{
				"Gradual improvement over repetitions",
				"Reduced responsiveness to early cues",
				"Improved stability with repetition",
			},
			Interpretation: "Engagement systems activate slowly but remain responsive to sustained stimulation.",
		},
		{
			Limit: 60,
			Name:  "Moderate Engagement Mobilization",
			Features: []string{
				"Improved response consistency",
				"Increased interaction continuity",
				"Reduced latency",
			},
			Interpretation: "Rhythmic stimulation supports partial activation of engagement mechanisms.",
		},
		{
			Limit: 80,
			Name:  "Sustained Engagement State",
			Features: []string{
				"Stable rhythmic participation",
				"Consistent timing output",
				"Maintained attention",
			},
			Interpretation: "Engagement systems are sufficiently activated to support continuous interaction.",
		},
		{
			Limit: 100,
			Name:  "High Engagement Activation",
			Features: []string{
				"Rapid response initiation",
				"Strong rhythmic consistency",
				"Sustained interaction energy",
			},
			Interpretation: "External rhythm effectively mobilizes engagement and timing systems.",
		},
	},
	game.ADHD: {
		{
			Limit: 20,
			Name:  "Attentional Dispersion",
			Features: []string{
				"Inconsistent focus on rhythmic cues",
				"Frequent timing lapses",
				"Poor temporal continuity",
			},
			Interpretation: "Attention allocation fluctuates rapidly, limiting stable rhythm tracking.",
		},
		{
			Limit: 40,
			Name:  "Reactive Attention",
			Features: []string{
				"Strong response to salient changes",
				"Reduced stability over time",
				"Variable timing output",
			},
			Interpretation: "Attention responds to stimulation but lacks sustained regulation.",
		},
		{
			Limit: 60,
			Name:  "Conditionally Stable Attention",
			Features: []string{
				"Improved focus under optimal stimulation",
				"Decline with excessive tempo pressure",
				"Moderate consistency",
			},
			Interpretation: "Attentional systems stabilize within a limited stimulation range.",
		},
		{
			Limit: 80,
			Name:  "Regulated Attention Engagement",
			Features: []string{
				"Sustained rhythmic focus",
				"Controlled response variability",
				"Efficient tempo adaptation",
			},
			Interpretation: "Attention regulation supports consistent interaction when stimulation is structured.",
		},
		{
			Limit: 100,
			Name:  "Optimally Tuned Attention",
			Features: []string{
				"High focus stability",
				"Precise rhythmic responses",
				"Minimal attentional drift",
			},
			Interpretation: "Attentional control is well-matched to task demands.",
		},
	},
	game.Anxiety: {
		{
			Limit: 20,
			Name:  "Heightened Anticipatory Disruption",
			Features: []string{
				"Premature responses to expected change",
				"Increased timing variability",
				"Difficulty maintaining rhythm continuity",
			},
			Interpretation: "Anticipatory processes dominate rhythmic behavior, disrupting stability.",
		},
		{
			Limit: 40,
			Name:  "Anticipation-Driven Variability",
			Features: []string{
				"Improved performance after change occurs",
				"Reduced stability before transitions",
				"Rapid fluctuation in timing",
			},
			Interpretation: "Performance is shaped more by expectation than by current rhythm.",
		},
		{
			Limit: 60,
			Name:  "Balanced Anticipation Control",
			Features: []string{
				"Improved tolerance to tempo change",
				"Faster post-change stabilization",
				"Moderate consistency",
			},
			Interpretation: "Anticipatory mechanisms are present but increasingly regulated.",
		},
		{
			Limit: 80,
			Name:  "Efficient Anticipation Regulation",
			Features: []string{
				"Controlled responses to upcoming change",
				"Rapid recovery after tempo shifts",
				"Stable rhythmic output",
			},
			Interpretation: "The system manages anticipation without destabilizing rhythm.",
		},
		{
			Limit: 100,
			Name:  "Resilient Temporal Regulation",
			Features: []string{
				"Minimal anticipatory disruption",
				"Strong rhythmic continuity",
				"Rapid adaptive recovery",
			},
			Interpretation: "Temporal regulation remains stable despite expected change.",
		},
	},
}
