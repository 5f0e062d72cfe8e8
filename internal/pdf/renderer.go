package pdf

import (
	"bytes"
	"image/png"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimeters (A4 portrait). The bottom margin is
// generous so body text never touches the page number.
const (
	leftMargin   = 20.0
	rightMargin  = 20.0
	bottomMargin = 35.0

	lineHeight = 4.5
)

var inlineBold = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Document is a finished export.
type Document struct {
	Bytes []byte
	Pages int
}

// Renderer turns Markdown into a themed PDF. The zero value renders with
// the default theme; Logo, when set, must be PNG bytes and is drawn in the
// page header. Now is overridable so the footer date is testable.
type Renderer struct {
	Theme    Theme
	Logo     []byte
	Compress bool
	Now      func() time.Time
}

func (r *Renderer) theme() Theme {
	if r.Theme.Name == "" {
		return DefaultTheme
	}
	return r.Theme
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Render lays the Markdown out line by line: H1 at 18pt, H2 at 14pt, bold
// field lines at 11pt bold, bullets indented, and plain lines accumulated
// into wrapped paragraphs. A page break is inserted whenever the cursor
// crosses the bottom margin, and every page gets the themed background,
// header and page number.
func (r *Renderer) Render(title, markdown string) (*Document, error) {
	theme := r.theme()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(r.Compress)
	doc.SetAutoPageBreak(false, 0)

	pageW, pageH := 210.0, 297.0
	contentWidth := pageW - (leftMargin + rightMargin)
	page := 1

	setText := func(hex string) {
		red, green, blue := hexToRGB(hex)
		doc.SetTextColor(red, green, blue)
	}

	applyTheme := func() {
		if theme.Background != "#ffffff" {
			red, green, blue := hexToRGB(theme.Background)
			doc.SetFillColor(red, green, blue)
			doc.Rect(0, 0, pageW, pageH, "F")
		}
		setText(theme.Text)
	}

	// A bad logo never blocks the export, so validate it up front.
	var logoW, logoH float64
	if len(r.Logo) > 0 {
		if cfg, err := png.DecodeConfig(bytes.NewReader(r.Logo)); err == nil && cfg.Height > 0 {
			doc.RegisterImageOptionsReader("logo",
				gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(r.Logo))
			logoW, logoH = float64(cfg.Width), float64(cfg.Height)
		}
	}

	headerAndFooter := func() float64 {
		posY := 20.0
		doc.SetFont("Helvetica", "", 10)
		setText(theme.Accent)
		if logoH > 0 {
			iconHeight := 10.0
			iconWidth := iconHeight * logoW / logoH
			doc.ImageOptions("logo", leftMargin, posY-8, iconWidth, iconHeight,
				false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			doc.Text(leftMargin+iconWidth+5, posY, "Created with Brieffast")
		} else {
			doc.Text(leftMargin, posY, "Created with Brieffast")
		}

		doc.SetLineWidth(0.5)
		red, green, blue := hexToRGB(theme.Borders)
		doc.SetDrawColor(red, green, blue)
		posY += 5
		doc.Line(leftMargin, posY, pageW-rightMargin, posY)

		doc.SetFont("Helvetica", "", 9)
		pageLabel := "Page " + strconv.Itoa(page)
		doc.Text(pageW/2-doc.GetStringWidth(pageLabel)/2, pageH-10, pageLabel)

		setText(theme.Text)
		return posY + 15
	}

	newPage := func() float64 {
		doc.AddPage()
		page++
		applyTheme()
		return headerAndFooter()
	}

	doc.AddPage()
	applyTheme()
	yPos := headerAndFooter()

	writeLines := func(lines []string, x float64) {
		for i, ln := range lines {
			doc.Text(x, yPos+float64(i)*lineHeight, ln)
		}
	}

	var content strings.Builder
	flush := func() {
		text := strings.TrimSpace(content.String())
		if text == "" {
			content.Reset()
			return
		}
		doc.SetFont("Helvetica", "", 11)
		setText(theme.Text)
		lines := doc.SplitText(text, contentWidth)
		writeLines(lines, leftMargin)
		yPos += 4 + float64(len(lines))*lineHeight
		content.Reset()
	}

	inHeading := false
	previousLineWasEmpty := false

	for _, line := range strings.Split(dedupeTitle(markdown), "\n") {
		if yPos > pageH-bottomMargin-10 {
			yPos = newPage()
		}

		switch {
		case strings.HasPrefix(line, "# "):
			flush()
			setText(theme.Headings)
			doc.SetFont("Helvetica", "B", 18)
			doc.Text(leftMargin, yPos, strings.TrimSpace(line[2:]))
			yPos += 12
			doc.SetFont("Helvetica", "", 11)
			inHeading = true

		case strings.HasPrefix(line, "## "):
			flush()
			setText(theme.Headings)
			doc.SetFont("Helvetica", "B", 14)
			doc.Text(leftMargin, yPos, strings.TrimSpace(line[3:]))
			yPos += 8
			doc.SetFont("Helvetica", "", 11)
			inHeading = true

		case strings.HasPrefix(line, "- "):
			flush()
			doc.SetFont("Helvetica", "", 11)
			bullet := "• " + strings.TrimSpace(line[2:])
			lines := doc.SplitText(bullet, contentWidth-5)
			writeLines(lines, leftMargin+5)
			yPos += float64(len(lines)) * lineHeight
			inHeading = false

		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4:
			flush()
			doc.SetFont("Helvetica", "B", 11)
			doc.Text(leftMargin, yPos, strings.TrimSpace(line[2:len(line)-2]))
			yPos += 6
			doc.SetFont("Helvetica", "", 11)
			inHeading = false

		case strings.TrimSpace(line) == "":
			if !previousLineWasEmpty && !inHeading {
				yPos += 3
			}
			flush()
			previousLineWasEmpty = true
			inHeading = false

		default:
			processed := inlineBold.ReplaceAllString(strings.TrimSpace(line), "$1")
			approx := math.Ceil(float64(len(processed)) / 80)
			if yPos+approx*5 > pageH-bottomMargin-10 {
				yPos = newPage()
			}
			if inHeading {
				content.Reset()
				content.WriteString(processed)
				inHeading = false
			} else {
				if content.Len() > 0 {
					content.WriteString(" ")
				}
				content.WriteString(processed)
			}
			previousLineWasEmpty = false
		}
	}

	if text := strings.TrimSpace(content.String()); text != "" {
		doc.SetFont("Helvetica", "", 11)
		lines := doc.SplitText(text, contentWidth)
		if yPos+float64(len(lines))*lineHeight > pageH-bottomMargin-10 {
			yPos = newPage()
		}
		setText(theme.Text)
		writeLines(lines, leftMargin)
		yPos += float64(len(lines))*lineHeight + 5
		content.Reset()
	}

	if yPos > pageH-20 {
		yPos = newPage()
	}

	doc.SetFont("Helvetica", "", 10)
	setText(theme.Accent)
	doc.Text(leftMargin, pageH-10, "Generated on "+r.now().Format("1/2/2006"))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return &Document{Bytes: buf.Bytes(), Pages: page}, nil
}

// dedupeTitle drops a repeated H1 title from the first few lines. Briefs
// whose generator emits its own title heading would otherwise render the
// title twice when the caller prepends one.
func dedupeTitle(markdown string) string {
	lines := strings.Split(markdown, "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "# ") {
		return markdown
	}
	title := strings.TrimSpace(lines[0])
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for i := 1; i < limit; i++ {
		if strings.TrimSpace(lines[i]) == title {
			kept := append([]string{lines[0]}, lines[i+1:]...)
			return strings.Join(kept, "\n")
		}
	}
	return markdown
}

// SafeFilename slugs a brief title into a download filename.
func SafeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteByte('-')
		}
	}
	return b.String() + ".pdf"
}
