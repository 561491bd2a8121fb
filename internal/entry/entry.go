// Package entry implements the freedesktop Desktop Entry parser: it turns a
// single .desktop file into a canonical, locale-resolved EntryRecord plus a
// precomputed lowercase search haystack ("Norm").
package entry

// ActionRecord is one entry in an EntryRecord's Actions list, corresponding
// to a "[Desktop Action <id>]" group.
type ActionRecord struct {
	ID   string
	Name *string
	Icon *string
	Exec *string
}

// EntryRecord is the canonical, locale-resolved record for a single
// .desktop file, plus the derived fields used by the search engine.
//
// Norm, IDLower, and NameLower are derived, not part of the wire-level
// public view (see Public).
type EntryRecord struct {
	ID             string
	Name           *string
	GenericName    *string
	Comment        *string
	Icon           *string
	Exec           *string
	TryExec        *string
	Type           *string
	StartupWMClass *string

	Terminal      bool
	StartupNotify *bool
	NoDisplay     *bool
	Hidden        *bool

	Categories []string
	Keywords   []string
	MimeTypes  []string
	OnlyShowIn []string
	NotShowIn  []string

	Actions []ActionRecord

	// Norm is the lowercase, space-joined haystack used for matching.
	Norm string
	// IDLower is the lowercased ID, used for id-boundary scoring.
	IDLower string
	// NameLower is the lowercased Name, used for name-boundary scoring.
	// Empty when Name is nil.
	NameLower string
}

// PublicEntry is the wire-level view of an EntryRecord: the derived,
// internal-only fields (Norm, IDLower, NameLower) are omitted.
type PublicEntry struct {
	ID             string         `json:"id"`
	Name           *string        `json:"name,omitempty"`
	GenericName    *string        `json:"generic_name,omitempty"`
	Comment        *string        `json:"comment,omitempty"`
	Icon           *string        `json:"icon,omitempty"`
	Exec           *string        `json:"exec,omitempty"`
	TryExec        *string        `json:"try_exec,omitempty"`
	Type           *string        `json:"type,omitempty"`
	StartupWMClass *string        `json:"startup_wm_class,omitempty"`
	Terminal       bool           `json:"terminal"`
	StartupNotify  *bool          `json:"startup_notify,omitempty"`
	NoDisplay      *bool          `json:"nodisplay,omitempty"`
	Hidden         *bool          `json:"hidden,omitempty"`
	Categories     []string       `json:"categories,omitempty"`
	Keywords       []string       `json:"keywords,omitempty"`
	MimeTypes      []string       `json:"mime_types,omitempty"`
	OnlyShowIn     []string       `json:"only_show_in,omitempty"`
	NotShowIn      []string       `json:"not_show_in,omitempty"`
	Actions        []ActionRecord `json:"actions,omitempty"`
}

// Public returns the wire-level view of e, omitting derived fields.
func (e *EntryRecord) Public() PublicEntry {
	return PublicEntry{
		ID:             e.ID,
		Name:           e.Name,
		GenericName:    e.GenericName,
		Comment:        e.Comment,
		Icon:           e.Icon,
		Exec:           e.Exec,
		TryExec:        e.TryExec,
		Type:           e.Type,
		StartupWMClass: e.StartupWMClass,
		Terminal:       e.Terminal,
		StartupNotify:  e.StartupNotify,
		NoDisplay:      e.NoDisplay,
		Hidden:         e.Hidden,
		Categories:     e.Categories,
		Keywords:       e.Keywords,
		MimeTypes:      e.MimeTypes,
		OnlyShowIn:     e.OnlyShowIn,
		NotShowIn:      e.NotShowIn,
		Actions:        e.Actions,
	}
}
