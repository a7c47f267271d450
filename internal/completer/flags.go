package completer

// flagModes maps known command-line flags to the filesystem completion mode
// their argument expects. Flags expecting a project or working directory get
// DirectoryOnly; flags naming an arbitrary file get AnyPath. Unrecognized
// flags are not path flags at all and fall through to generic argument
// completion.
var flagModes = map[string]Mode{
	"--path":        DirectoryOnly,
	"--directory":   DirectoryOnly,
	"--working-dir": DirectoryOnly,
	"-C":            DirectoryOnly,

	"--manifest-path": AnyPath,
	"--file":          AnyPath,
	"-f":              AnyPath,
	"--output":        AnyPath,
	"-o":              AnyPath,
	"--config":        AnyPath,
	"--log-file":      AnyPath,
	"--requirement":   AnyPath,
	"-r":              AnyPath,
}

// ModeForFlag returns the completion mode for a known path flag.
func ModeForFlag(flag string) (Mode, bool) {
	mode, ok := flagModes[flag]
	return mode, ok
}
