package model

// Prompt is printed in front of the pending command line.
const Prompt = "> "

// Transcript markers.
const (
	EchoPrefix  = Prompt    // Submitted command line copied into the scrollback
	ErrorPrefix = "error: " // Visible line for a failed run
)

// ResolvedCommand is a program located on the search path plus the argument
// vector it will be started with. It lives for a single submission.
type ResolvedCommand struct {
	Path string   // Location of the program (e.g., /usr/bin/ls)
	Name string   // Token the user typed (e.g., ls)
	Args []string // Arguments passed after Path
}
