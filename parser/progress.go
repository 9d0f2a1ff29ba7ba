package parser

import (
	"io"
	"os"
	"path/filepath"

	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
)

//progressReader advances a progress bar by the bytes read through it
type progressReader struct {
	io.Reader
	bar  *mpb.Bar
	read int64
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if n > 0 {
		r.read += int64(n)
		r.bar.IncrBy(n)
	}
	return n, err
}

//finish fills the remainder of the bar when the stream ended early
func (r *progressReader) finish(total int64) {
	if rest := total - r.read; rest > 0 {
		r.bar.IncrBy(int(rest))
		r.read = total
	}
}

//newProgress creates the bar container. Bars are drawn on stderr so they
//never mix with a report written to stdout.
func newProgress() *mpb.Progress {
	return mpb.New(mpb.WithWidth(20), mpb.WithOutput(os.Stderr))
}

//addFileBar registers a byte counting bar for one input file
func addFileBar(p *mpb.Progress, path string, size int64) *mpb.Bar {
	return p.AddBar(size,
		mpb.PrependDecorators(
			decor.Name("\t[-] Reading "+filepath.Base(path)+":", decor.WC{W: 30, C: decor.DidentRight}),
			decor.CountersKibiByte(" % .1f / % .1f ", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
}
