package dictionary

import "slices"

// PhoneticLookup returns the group word was last declared in, the word itself
// included. ok is false when word belongs to no group.
func (d *Dictionary) PhoneticLookup(word string) (group []string, ok bool) {
	g, ok := d.phonetics[word]
	if !ok {
		return nil, false
	}
	return slices.Clone(g), true
}

// addPhoneticGroup maps every member to the whole group. A member already
// mapped by an earlier group is overwritten.
func (d *Dictionary) addPhoneticGroup(group []string) {
	for _, w := range group {
		d.phonetics[w] = group
	}
}
