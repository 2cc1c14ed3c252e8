package timer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// player plays a short cue.
type player interface {
	Play()
}

// phaseSound is a decoded sound kept in memory so that it can be replayed
// on every phase change.
type phaseSound struct {
	buf *beep.Buffer
}

var speakerOnce sync.Once

func (p *phaseSound) Play() {
	speaker.Play(p.buf.Streamer(0, p.buf.Len()))
}

func decodeSound(
	ext string,
	r io.ReadCloser,
) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ".ogg":
		return vorbis.Decode(r)
	case ".mp3":
		return mp3.Decode(r)
	case ".flac":
		return flac.Decode(r)
	case ".wav":
		return wav.Decode(r)
	}

	return nil, beep.Format{}, errInvalidSoundFormat
}

// newPhaseSound decodes the sound file at path and prepares the speaker.
func newPhaseSound(path string) (*phaseSound, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg", ".mp3", ".flac", ".wav":
	default:
		return nil, errInvalidSoundFormat
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errLoadSound.Fmt(path).Wrap(err)
	}

	stream, format, err := decodeSound(ext, f)
	if err != nil {
		_ = f.Close()
		return nil, errLoadSound.Fmt(path).Wrap(err)
	}

	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)

	bufferSize := 10

	speakerOnce.Do(func() {
		err = speaker.Init(
			format.SampleRate,
			format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	if err != nil {
		return nil, errLoadSound.Fmt(path).Wrap(err)
	}

	return &phaseSound{buf: buf}, nil
}
