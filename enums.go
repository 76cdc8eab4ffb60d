package recordstore

// WriteMode The backing file write mode
type WriteMode uint

const (
	// Sync Writes the replacement file synchronously, calling [os.File.Sync] before it is renamed
	// over the backing file, it is slower, but have more consistency of a succesful write, it is
	// the default write mode
	Sync WriteMode = iota

	// Buffered Writes the replacement file using the operating system default buffer, it is faster
	// but less consistent than [Sync]
	Buffered
)

// Kind The kind of failure reported by a [RecordStore] operation
type Kind uint

const (
	// KindNotFound The backing file is absent when a read is attempted
	KindNotFound Kind = iota + 1

	// KindCorrupted Any I/O, deserialization or serialization failure around the backing file
	KindCorrupted
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "FileNotFound"
	case KindCorrupted:
		return "FileCorrupted"
	default:
		return "Unknown"
	}
}
