package surface

import "github.com/iw2rmb/babushka/composer"

// Recorder is a headless surface that keeps every artifact it is given.
type Recorder struct {
	// Size is returned by DefaultTextSize and may be changed between renders.
	Size int

	sizeReads int
	history   []composer.Styled
}

// NewRecorder returns a Recorder whose default text size is size.
func NewRecorder(size int) *Recorder {
	return &Recorder{Size: size}
}

func (r *Recorder) DefaultTextSize() int {
	r.sizeReads++
	return r.Size
}

func (r *Recorder) SetContent(s composer.Styled) {
	r.history = append(r.history, s)
}

// Last returns the content currently displayed, which is empty before the
// first SetContent.
func (r *Recorder) Last() composer.Styled {
	if len(r.history) == 0 {
		return composer.Styled{}
	}
	return r.history[len(r.history)-1]
}

// Calls returns how many times SetContent ran.
func (r *Recorder) Calls() int { return len(r.history) }

// SizeReads returns how many times DefaultTextSize ran.
func (r *Recorder) SizeReads() int { return r.sizeReads }

// History returns a copy of every artifact received, oldest first.
func (r *Recorder) History() []composer.Styled {
	return append([]composer.Styled(nil), r.history...)
}
