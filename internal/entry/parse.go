package entry

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerer performs Unicode-aware lowercasing for Norm/IDLower/NameLower and
// for query normalization (see internal/search). language.Und is used on
// purpose: haystack construction must not depend on the process's runtime
// locale preferences, only on the (separately resolved) locale of each
// localized field.
var lowerer = cases.Lower(language.Und)

// ToLower performs the Unicode-aware lowercasing used throughout the
// indexer, exported so internal/search can normalize queries identically.
func ToLower(s string) string {
	return lowerer.String(s)
}

type section int

const (
	sectionNone section = iota
	sectionDesktopEntry
	sectionAction
	sectionOther
)

type rawAction struct {
	id   string
	name localizedField
	icon *string
	exec *string
}

// Parse reads path and produces its EntryRecord. It returns (nil, err) only
// on I/O failure (file not found or not readable); a file with no
// "[Desktop Entry]" group or no Name still yields a record with those
// fields empty, per spec.md §4.1.
func Parse(path string, root string) (*EntryRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	id := ComputeID(root, path)
	return parseBytes(data, id), nil
}

// parseBytes runs the line-oriented Desktop Entry grammar over data and
// assembles the canonical record for the given pre-computed id.
func parseBytes(data []byte, id string) *EntryRecord {
	prefs := preferredLocales()

	var (
		sec             = sectionNone
		name            = newLocalizedField(prefs)
		genericName     = newLocalizedField(prefs)
		comment         = newLocalizedField(prefs)
		keywords        = newLocalizedField(prefs)
		icon            *string
		exec            *string
		tryExec         *string
		terminal        bool
		categories      []string
		mimeTypes       []string
		actionsList     []string
		typeField       *string
		startupWMClass  *string
		startupNotify   *bool
		nodisplay       *bool
		hidden          *bool
		onlyShowIn      []string
		notShowIn       []string
		actionOrder     []string
		actionsByID     = make(map[string]*rawAction)
		currentActionID string
	)

	getAction := func(aid string) *rawAction {
		a, ok := actionsByID[aid]
		if !ok {
			a = &rawAction{id: aid, name: newLocalizedField(prefs)}
			actionsByID[aid] = a
			actionOrder = append(actionOrder, aid)
		}
		return a
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				sec = sectionOther
				continue
			}
			switch {
			case line == "[Desktop Entry]":
				sec = sectionDesktopEntry
			case strings.HasPrefix(line, "[Desktop Action "):
				aid := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "[Desktop Action "), "]"))
				if aid == "" {
					sec = sectionOther
					continue
				}
				sec = sectionAction
				currentActionID = aid
				getAction(aid)
			default:
				sec = sectionOther
			}
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			continue
		}
		keyRaw := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])
		if keyRaw == "" {
			continue
		}

		key, locale := splitKeyLocale(keyRaw)

		switch sec {
		case sectionDesktopEntry:
			switch key {
			case "Name":
				name.set(locale, value)
			case "GenericName":
				genericName.set(locale, value)
			case "Comment":
				comment.set(locale, value)
			case "Icon":
				if locale == "" {
					icon = strPtr(value)
				}
			case "Exec":
				if locale == "" {
					exec = strPtr(value)
				}
			case "TryExec":
				if locale == "" {
					tryExec = strPtr(value)
				}
			case "Terminal":
				if locale == "" {
					terminal, _ = parseBool(value)
				}
			case "Categories":
				if locale == "" {
					categories = splitList(value)
				}
			case "Keywords":
				keywords.set(locale, value)
			case "MimeType":
				if locale == "" {
					mimeTypes = splitList(value)
				}
			case "Actions":
				if locale == "" {
					actionsList = splitList(value)
				}
			case "Type":
				if locale == "" {
					typeField = strPtr(value)
				}
			case "StartupWMClass":
				if locale == "" {
					startupWMClass = strPtr(value)
				}
			case "StartupNotify":
				if locale == "" {
					startupNotify = parseBoolPtr(value)
				}
			case "NoDisplay":
				if locale == "" {
					nodisplay = parseBoolPtr(value)
				}
			case "Hidden":
				if locale == "" {
					hidden = parseBoolPtr(value)
				}
			case "OnlyShowIn":
				if locale == "" {
					onlyShowIn = splitList(value)
				}
			case "NotShowIn":
				if locale == "" {
					notShowIn = splitList(value)
				}
			}
		case sectionAction:
			a := getAction(currentActionID)
			switch key {
			case "Name":
				a.name.set(locale, value)
			case "Icon":
				if locale == "" {
					a.icon = strPtr(value)
				}
			case "Exec":
				if locale == "" {
					a.exec = strPtr(value)
				}
			}
		case sectionNone, sectionOther:
			// ignored
		}
	}

	resolvedKeywords, _ := keywords.resolve()
	var keywordList []string
	if resolvedKeywords != "" {
		keywordList = splitList(resolvedKeywords)
	}

	actions := buildActions(actionsList, actionOrder, actionsByID)

	e := &EntryRecord{
		ID:             id,
		Icon:           icon,
		Exec:           exec,
		TryExec:        tryExec,
		Terminal:       terminal,
		Categories:     categories,
		Keywords:       keywordList,
		MimeTypes:      mimeTypes,
		Actions:        actions,
		Type:           typeField,
		StartupWMClass: startupWMClass,
		StartupNotify:  startupNotify,
		NoDisplay:      nodisplay,
		Hidden:         hidden,
		OnlyShowIn:     onlyShowIn,
		NotShowIn:      notShowIn,
	}
	if v, ok := name.resolve(); ok {
		e.Name = strPtr(v)
	}
	if v, ok := genericName.resolve(); ok {
		e.GenericName = strPtr(v)
	}
	if v, ok := comment.resolve(); ok {
		e.Comment = strPtr(v)
	}

	e.IDLower = ToLower(e.ID)
	if e.Name != nil {
		e.NameLower = ToLower(*e.Name)
	}
	e.Norm = buildNorm(e)

	return e
}

// buildActions orders actions per spec.md §4.1 "Actions": first the ids
// listed in Actions= (in listed order, only those with a matching group),
// then any remaining action groups in lexicographic order of id.
func buildActions(actionsList, actionOrder []string, byID map[string]*rawAction) []ActionRecord {
	var out []ActionRecord
	seen := make(map[string]bool, len(byID))

	for _, aid := range actionsList {
		a, ok := byID[aid]
		if !ok {
			continue
		}
		out = append(out, toActionRecord(a))
		seen[aid] = true
	}

	remaining := make([]string, 0, len(actionOrder))
	for _, aid := range actionOrder {
		if !seen[aid] {
			remaining = append(remaining, aid)
		}
	}
	sort.Strings(remaining)
	for _, aid := range remaining {
		out = append(out, toActionRecord(byID[aid]))
	}

	return out
}

func toActionRecord(a *rawAction) ActionRecord {
	r := ActionRecord{ID: a.id, Icon: a.icon, Exec: a.exec}
	if v, ok := a.name.resolve(); ok {
		r.Name = strPtr(v)
	}
	return r
}

// splitKeyLocale splits "Name[fr_FR]" into ("Name", "fr_FR"); a key with no
// "[...]" suffix, or an empty bracketed suffix, is returned unchanged with
// an empty locale.
func splitKeyLocale(key string) (base, locale string) {
	i := strings.IndexByte(key, '[')
	if i < 0 {
		return key, ""
	}
	if !strings.HasSuffix(key, "]") {
		return key, ""
	}
	loc := key[i+1 : len(key)-1]
	if loc == "" {
		return key, ""
	}
	return key[:i], loc
}

func parseBool(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	default:
		return false, false
	}
}

func parseBoolPtr(v string) *bool {
	b, ok := parseBool(v)
	if !ok {
		return nil
	}
	return &b
}

// splitList splits a ';'-separated list value, trimming and dropping empty
// elements.
func splitList(v string) []string {
	parts := strings.Split(v, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func strPtr(s string) *string { return &s }
