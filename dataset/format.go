package dataset

import (
	"bufio"
	"io"
	"iter"
	"strconv"
)

// AppendVector appends v to dst as space-separated components in the
// shortest 'g' representation that round-trips through Read.
func AppendVector(dst []byte, v []float64) []byte {
	for k, x := range v {
		if k > 0 {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendFloat(dst, x, 'g', -1, 64)
	}

	return dst
}

// Write writes one vector per line.
func Write(w io.Writer, vectors iter.Seq[[]float64]) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for v := range vectors {
		buf = AppendVector(buf[:0], v)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
