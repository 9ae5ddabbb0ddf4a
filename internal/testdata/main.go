// Package testdata holds pattern files shared by tests.
package testdata

// Drums is the built in drum pattern written as a pattern file
const Drums = `# 100 beats, five blocks of five bars
name: drums
bar 5: x s x s
bar 5: x x s s
bar 5: x _ s x
bar 5: x s s x
bar 5: x s x s
`

const Segments = `name: steps
segment 2: C4
segment 4: C4 G4
segment 3:
`
