package cli

import (
	"io"
	"os"

	"github.com/kleinwareio/liketype"
	"github.com/kleinwareio/liketype/codec"
	"github.com/kleinwareio/liketype/errors"
	"github.com/kleinwareio/liketype/logging"
)

const stdinName = "-"

// readValues loads the list stored at path ("-" reads stdin) as a sequence
// of kind.
func (s *session) readValues(kind *liketype.SeqKind[any], path string, stdin io.Reader) (liketype.Seq[any], error) {
	c, err := s.codecFor(path)
	if err != nil {
		return liketype.Seq[any]{}, err
	}

	var data []byte
	if path == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return liketype.Seq[any]{}, errors.Wrapf(err, "cannot read %s", path)
	}

	seq, err := kind.Decode(c, data)
	if err != nil {
		s.logger.Warn(s.ctx, "cannot decode input", logging.String("path", path), logging.Error(err))
		return liketype.Seq[any]{}, err
	}
	s.logger.Debug(s.ctx, "input decoded",
		logging.String("path", path),
		logging.String("codec", c.Name()),
		logging.Int("count", seq.Count()))
	return seq, nil
}

func (s *session) codecFor(path string) (codec.Codec, error) {
	if s.settings.Format != "" {
		return codec.ForFormat(s.settings.Format)
	}
	if path == stdinName {
		return codec.NewJSONCodec(), nil
	}
	return codec.ForPath(path)
}

func (s *session) newKind() *liketype.SeqKind[any] {
	return liketype.DefineSeq[any](s.settings.TypeName).WithStrategy(s.settings.Strategy)
}
