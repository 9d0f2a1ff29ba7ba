package data

import "strconv"

//ConnectionKey identifies one aggregation bucket: a source address
//talking to a destination port
type ConnectionKey struct {
	Src string
	Dpt int
}

//NewConnectionKey returns the bucket key for a source address and destination port
func NewConnectionKey(src string, dpt int) ConnectionKey {
	return ConnectionKey{Src: src, Dpt: dpt}
}

//String renders the key as "src -> port"
func (k ConnectionKey) String() string {
	return k.Src + " -> " + strconv.Itoa(k.Dpt)
}
