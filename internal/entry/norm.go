package entry

import "strings"

// buildNorm assembles the lowercase, space-joined search haystack for e, in
// the field order spec.md §4.1 "Normalized haystack" fixes: id, name,
// generic_name, comment, exec, try_exec, icon, categories, keywords,
// mime_types, actions (id + name), type, startup_wm_class. Missing fields
// simply contribute nothing; the result is not deduplicated or re-separated
// beyond single spaces, since matching is substring/boundary based.
func buildNorm(e *EntryRecord) string {
	var b strings.Builder

	add := func(s string) {
		if s == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ToLower(s))
	}
	addPtr := func(s *string) {
		if s != nil {
			add(*s)
		}
	}
	addList := func(list []string) {
		for _, s := range list {
			add(s)
		}
	}

	add(e.ID)
	addPtr(e.Name)
	addPtr(e.GenericName)
	addPtr(e.Comment)
	addPtr(e.Exec)
	addPtr(e.TryExec)
	addPtr(e.Icon)
	addList(e.Categories)
	addList(e.Keywords)
	addList(e.MimeTypes)
	for _, a := range e.Actions {
		add(a.ID)
		addPtr(a.Name)
	}
	addPtr(e.Type)
	addPtr(e.StartupWMClass)

	return b.String()
}
