package audio

import "context"

// Path is the saved location of audio file (local path or URL).
type Path string

// Store persists synthesized audio.
type Store interface {
	// Save writes data to dest, replacing whatever was there, and returns the saved path.
	Save(data []byte, dest string) (Path, error)
}

// Publisher copies an already saved audio file somewhere else (e.g. Google Drive).
type Publisher interface {
	// Publish uploads the file at path and returns the remote id and a viewable link.
	Publish(ctx context.Context, path Path) (id string, link string, err error)
}
