package utf8stream

import "github.com/rivo/uniseg"

// Width returns the number of terminal columns the cluster occupies.
func (c Cluster) Width() int {
	return uniseg.StringWidth(c.Text)
}

// Width returns the number of terminal columns String() occupies.
func (s *Stream) Width() int {
	return uniseg.StringWidth(s.String())
}
