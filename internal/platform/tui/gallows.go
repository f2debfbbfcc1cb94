package tui

// The gallows is drawn in seven stages, from empty frame to complete figure.
var gallowsStages = []string{
	`
 _______
|/      |
|
|
|
|
|___
`,
	`
 _______
|/      |
|      ( )
|
|
|
|___
`,
	`
 _______
|/      |
|      ( )
|       |
|       |
|
|___
`,
	`
 _______
|/      |
|      ( )
|      /|
|       |
|
|___
`,
	`
 _______
|/      |
|      ( )
|      /|\
|       |
|
|___
`,
	`
 _______
|/      |
|      ( )
|      /|\
|       |
|      /
|___
`,
	`
 _______
|/      |
|      ( )
|      /|\
|       |
|      / \
|___
`,
}

// Gallows returns the drawing for the given error count, scaled so the
// figure completes exactly when maxErrors is reached.
func Gallows(errors, maxErrors int) string {
	last := len(gallowsStages) - 1
	if maxErrors < 1 {
		maxErrors = 1
	}
	idx := errors * last / maxErrors
	if idx > last {
		idx = last
	}
	if idx < 0 {
		idx = 0
	}
	return gallowsStages[idx]
}
