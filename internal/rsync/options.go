package rsync

// Option indices in canonical command order. The key table in Catalog and
// Toggle both use these.
const (
	OptArchive = iota
	OptVerbose
	OptCompress
	OptDryRun
	OptProgress
	OptDelete
	OptHumanReadable
	OptRemoteShell
	OptRemoveSourceFiles
	OptDeleteExcluded
	OptPerFileProgress

	OptionCount
)

// DefaultShell is passed to -e when the remote shell option is enabled and no
// other shell was configured.
const DefaultShell = "ssh"

// OptionInfo describes how a flag is presented and which key flips it.
type OptionInfo struct {
	Key   string
	Label string
	Flag  string
}

// Catalog lists every option in canonical order.
var Catalog = [OptionCount]OptionInfo{
	OptArchive:           {Key: "a", Label: "Archive", Flag: "-a"},
	OptVerbose:           {Key: "v", Label: "Verbose", Flag: "-v"},
	OptCompress:          {Key: "z", Label: "Compress", Flag: "-z"},
	OptDryRun:            {Key: "n", Label: "Dry-run", Flag: "-n"},
	OptProgress:          {Key: "p", Label: "Progress", Flag: "--progress"},
	OptDelete:            {Key: "d", Label: "Delete", Flag: "--delete"},
	OptHumanReadable:     {Key: "h", Label: "Human", Flag: "-h"},
	OptRemoteShell:       {Key: "e", Label: "SSH", Flag: "-e"},
	OptRemoveSourceFiles: {Key: "r", Label: "DelSrc", Flag: "--remove-source-files"},
	OptDeleteExcluded:    {Key: "x", Label: "DelExcl", Flag: "--delete-excluded"},
	OptPerFileProgress:   {Key: "f", Label: "TotalProgress", Flag: "--info=progress2"},
}

// IndexForKey returns the option index bound to key, or -1.
func IndexForKey(key string) int {
	for i, info := range Catalog {
		if info.Key == key {
			return i
		}
	}
	return -1
}

// Options is the set of toggleable rsync flags plus exclusion patterns.
type Options struct {
	Archive           bool
	Verbose           bool
	Compress          bool
	DryRun            bool
	Progress          bool
	Delete            bool
	HumanReadable     bool
	RemoteShell       bool
	RemoveSourceFiles bool
	DeleteExcluded    bool
	PerFileProgress   bool

	Exclude []string
	Shell   string
}

// DefaultOptions returns the session start state: archive, verbose, progress
// and human-readable output enabled.
func DefaultOptions() Options {
	return Options{
		Archive:       true,
		Verbose:       true,
		Progress:      true,
		HumanReadable: true,
		Shell:         DefaultShell,
	}
}

// Toggle flips the flag at index. Indices outside [0, OptionCount) are ignored.
func (o *Options) Toggle(index int) {
	if f := o.field(index); f != nil {
		*f = !*f
	}
}

// Enabled reports the state of the flag at index; unknown indices are false.
func (o Options) Enabled(index int) bool {
	if f := o.field(index); f != nil {
		return *f
	}
	return false
}

// Clone returns a copy that shares no mutable state with o.
func (o Options) Clone() Options {
	dup := o
	if o.Exclude != nil {
		dup.Exclude = append([]string(nil), o.Exclude...)
	}
	return dup
}

func (o *Options) field(index int) *bool {
	switch index {
	case OptArchive:
		return &o.Archive
	case OptVerbose:
		return &o.Verbose
	case OptCompress:
		return &o.Compress
	case OptDryRun:
		return &o.DryRun
	case OptProgress:
		return &o.Progress
	case OptDelete:
		return &o.Delete
	case OptHumanReadable:
		return &o.HumanReadable
	case OptRemoteShell:
		return &o.RemoteShell
	case OptRemoveSourceFiles:
		return &o.RemoveSourceFiles
	case OptDeleteExcluded:
		return &o.DeleteExcluded
	case OptPerFileProgress:
		return &o.PerFileProgress
	}
	return nil
}
