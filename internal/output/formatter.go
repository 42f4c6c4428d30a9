package output

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/randomuser"
)

// TextFormatter renders users as labelled, optionally colored blocks.
type TextFormatter struct {
	NoColor bool
	scheme  *ColorScheme
}

// NewTextFormatter creates a text formatter.
func NewTextFormatter(noColor bool) *TextFormatter {
	return &TextFormatter{NoColor: noColor, scheme: SchemeFor(noColor)}
}

// FormatUsers implements FormatProvider.
func (f *TextFormatter) FormatUsers(users []randomuser.User, info *randomuser.Info) (string, error) {
	var buf strings.Builder

	for i, u := range users {
		if i > 0 {
			buf.WriteString("\n")
		}
		f.writeUser(&buf, u)
	}

	if info != nil {
		if len(users) > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(f.scheme.Muted.Sprintf("seed %s · %d results · page %d · v%s",
			info.Seed, info.Results, info.Page, info.Version))
		buf.WriteString("\n")
	}

	return buf.String(), nil
}

func (f *TextFormatter) writeUser(buf *strings.Builder, u randomuser.User) {
	title := u.Name.Full()
	if u.Name.Title != "" {
		title = fmt.Sprintf("%s (%s)", title, u.Name.Title)
	}
	buf.WriteString(fmt.Sprintf("● %s  %s  %s\n",
		f.scheme.Name.Sprint(title),
		f.scheme.Highlight.Sprint(u.Gender.String()),
		u.Nationality.Code()))

	f.field(buf, "email", u.Email)
	f.field(buf, "phone", joinNonEmpty(" / ", u.Phone, u.Cell))
	if !u.Birthday.Date.IsZero() {
		f.field(buf, "born", fmt.Sprintf("%s (%d)", u.Birthday.Date.Format("2006-01-02"), u.Birthday.Age))
	}
	f.field(buf, "address", formatAddress(u.Location))
	f.field(buf, "login", joinNonEmpty(" / ", u.Login.Username, u.Login.Password))
	if u.ID.Value != nil {
		f.field(buf, "id", joinNonEmpty(" ", u.ID.Name, *u.ID.Value))
	}
	f.field(buf, "picture", u.Picture.Large)
}

func (f *TextFormatter) field(buf *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	buf.WriteString(fmt.Sprintf("  %s %s\n", f.scheme.Label.Sprintf("%-8s", label), f.scheme.Value.Sprint(value)))
}

// FormatNationalities lists every supported nationality, one per line.
func (f *TextFormatter) FormatNationalities(ns []randomuser.Nationality) string {
	var buf strings.Builder
	for _, n := range ns {
		buf.WriteString(fmt.Sprintf("%s  %s\n", f.scheme.Highlight.Sprint(n.Code()), n.Name()))
	}
	return buf.String()
}

// FormatError renders err with its kind, if it has one.
func FormatError(err error, noColor bool) string {
	scheme := SchemeFor(noColor)
	if kind := randomuser.KindOf(err); kind != 0 {
		return fmt.Sprintf("%s %s %s\n", ErrorIcon(noColor), scheme.Error.Sprintf("[%s]", kind), err)
	}
	return fmt.Sprintf("%s %s\n", ErrorIcon(noColor), err)
}

func formatAddress(l randomuser.Location) string {
	street := ""
	if l.Street.Name != "" {
		street = fmt.Sprintf("%d %s", l.Street.Number, l.Street.Name)
	}
	return joinNonEmpty(", ", street, l.City, joinNonEmpty(" ", l.State, l.Postcode.String()), l.Country)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
