package gamedoc

import "fmt"

// CheckReferences walks every cross-category reference in the document and
// reports those that fall outside the referenced category's id range. The
// document is never altered: filename-derived references are best-effort by
// construction, so a dangling value is reported, not repaired.
//
// Postcondition: returns one warning per out-of-range reference; an empty
// slice means every reference resolves.
func (d *Document) CheckReferences() []string {
	var warnings []string

	for _, s := range d.Sprites {
		for i, f := range s.Frames {
			if f.TextureID < 0 || f.TextureID >= len(d.Textures) {
				warnings = append(warnings, fmt.Sprintf(
					"sprite %q frame %d references texture %d of %d",
					s.Name, i, f.TextureID, len(d.Textures),
				))
			}
		}
	}

	for _, o := range d.Objects {
		// -1 is the documented "no sprite" value, not a dangling reference.
		if o.SpriteID == -1 {
			continue
		}
		if o.SpriteID < 0 || o.SpriteID >= len(d.Sprites) {
			warnings = append(warnings, fmt.Sprintf(
				"object %q references sprite %d of %d",
				o.Name, o.SpriteID, len(d.Sprites),
			))
		}
	}

	for _, r := range d.Rooms {
		for _, inst := range r.Instances {
			if inst.ObjectID < 0 || inst.ObjectID >= len(d.Objects) {
				warnings = append(warnings, fmt.Sprintf(
					"instance %d in room %q references object %d of %d",
					inst.ID, r.Name, inst.ObjectID, len(d.Objects),
				))
			}
		}
	}

	return warnings
}
