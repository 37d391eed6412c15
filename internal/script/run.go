package script

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/pkg/logger"
)

// Run builds the code described by s and executes its commands, writing one
// result line per encode or decode and one line per symbol for print.
//
// A command that fails writes "error: <reason>" in place of its result and
// the remaining commands still run.  Only a frequency table that cannot be
// built, or a write error, makes Run itself fail.
func Run(w io.Writer, s *Script, log logger.Logger) error {
	e, err := huffcode.Build(s.Frequencies)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	log.Infof("built %v", e)

	bw := bufio.NewWriter(w)
	for _, cmd := range s.Commands {
		var result string
		var err error
		switch cmd.Name {
		case CmdPrint:
			for _, entry := range e.Report() {
				bw.WriteByte(entry.Symbol)
				bw.WriteByte(' ')
				bw.WriteString(string(entry.Code))
				bw.WriteByte('\n')
			}
			continue
		case CmdEncode:
			result, err = huffcode.EncodeString(e, cmd.Arg)
		case CmdDecode:
			result, err = huffcode.DecodeString(e, cmd.Arg)
		}
		if err != nil {
			log.Errorf("line %d: %s: %v", cmd.Line, cmd.Name, err)
			fmt.Fprintf(bw, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(bw, result)
	}
	return bw.Flush()
}
