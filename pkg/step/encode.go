package step

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Encode writes the file as STEP text: header records first, then every
// instance on its own line in declared order. Output is canonical, so
// encoding the result of a decode is stable across repeated round trips.
func Encode(w io.Writer, f *File) error {
	bw := bufio.NewWriterSize(w, 64<<10)

	fmt.Fprintf(bw, "%s;\n", kwOpen)
	fmt.Fprintf(bw, "%s;\n", kwHeader)
	for _, rec := range f.Header.records() {
		bw.WriteString(rec.Name)
		writeArgs(bw, rec.Args)
		bw.WriteString(";\n")
	}
	fmt.Fprintf(bw, "%s;\n", kwEndSec)

	fmt.Fprintf(bw, "%s;\n", kwData)
	for _, inst := range f.Instances() {
		fmt.Fprintf(bw, "#%d=%s", inst.ID, inst.Type)
		writeArgs(bw, inst.Args)
		bw.WriteString(";\n")
	}
	fmt.Fprintf(bw, "%s;\n", kwEndSec)
	fmt.Fprintf(bw, "%s;\n", kwClose)

	return bw.Flush()
}

// EncodeFile writes the file to path, replacing any previous content.
func EncodeFile(path string, f *File) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(fh, f); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

func writeArgs(bw *bufio.Writer, args []Value) {
	var b strings.Builder
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		arg.write(&b)
	}
	b.WriteByte(')')
	bw.WriteString(b.String())
}
