package record

import "time"

// IconType discriminates the icon descriptor variants of an external record.
type IconType string

// IconType values.
const (
	IconNone     IconType = ""
	IconEmoji    IconType = "emoji"
	IconExternal IconType = "external"
	IconFile     IconType = "file"
)

// Icon is an external record's icon descriptor: an emoji, an externally
// hosted image URL, or a file URL hosted by the external service itself.
type Icon struct {
	iconType IconType
	emoji    string
	url      string
}

// NewEmojiIcon creates an emoji icon.
func NewEmojiIcon(emoji string) Icon {
	return Icon{iconType: IconEmoji, emoji: emoji}
}

// NewImageIcon creates an external or file icon pointing at url.
func NewImageIcon(iconType IconType, url string) Icon {
	return Icon{iconType: iconType, url: url}
}

// Type returns the icon variant.
func (i Icon) Type() IconType { return i.iconType }

// URL returns the image URL for external and file icons, or "".
func (i Icon) URL() string { return i.url }

// IsImage reports whether the icon points at a downloadable image.
func (i Icon) IsImage() bool {
	return (i.iconType == IconExternal || i.iconType == IconFile) && i.url != ""
}

// IsZero reports whether the record has no icon.
func (i Icon) IsZero() bool { return i.iconType == IconNone }

// Raw returns the descriptor as stored alongside the record: the emoji
// itself, or the source image URL.
func (i Icon) Raw() string {
	if i.iconType == IconEmoji {
		return i.emoji
	}
	return i.url
}

// Record is one row of the external property database.
type Record struct {
	id           string
	properties   map[string]Property
	icon         Icon
	lastEditedAt time.Time
}

// New creates a Record. id is kept in its raw (possibly dashed) form;
// use NormalizedID for comparisons.
func New(id string, properties map[string]Property, icon Icon, lastEditedAt time.Time) Record {
	return Record{
		id:           id,
		properties:   properties,
		icon:         icon,
		lastEditedAt: lastEditedAt,
	}
}

// ID returns the raw external id as the source reported it.
func (r Record) ID() string { return r.id }

// NormalizedID returns the canonical dashless id.
func (r Record) NormalizedID() string { return NormalizeID(r.id) }

// Properties returns the property map keyed by display name.
func (r Record) Properties() map[string]Property { return r.properties }

// Property returns the named property and whether it exists.
func (r Record) Property(name string) (Property, bool) {
	p, ok := r.properties[name]
	return p, ok
}

// Icon returns the record's icon descriptor.
func (r Record) Icon() Icon { return r.icon }

// LastEditedAt returns the source-side last-modified timestamp.
func (r Record) LastEditedAt() time.Time { return r.lastEditedAt }
