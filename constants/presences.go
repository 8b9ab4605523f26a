package constants

// Shown as "Watching ..." and rotated by the ready listener.
var Presences = []string{
	"the role board",
	"your reactions",
	"roles hand themselves out",
	"the audit log",
}
