package data

import "sort"

//StringSet is a set of strings, used for address membership tests
type StringSet map[string]struct{}

//NewStringSet returns a set holding the given strings
func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, str := range items {
		s.Insert(str)
	}
	return s
}

//Items returns the strings in the set as a sorted slice.
func (s StringSet) Items() []string {
	retVal := make([]string, 0, len(s))
	for str := range s {
		retVal = append(retVal, str)
	}
	sort.Strings(retVal)
	return retVal
}

//Insert adds a string to the set
func (s StringSet) Insert(str string) {
	s[str] = struct{}{}
}

//Contains checks if a given string is in the set
func (s StringSet) Contains(str string) bool {
	_, ok := s[str]
	return ok
}

//Len returns the number of strings in the set
func (s StringSet) Len() int {
	return len(s)
}
