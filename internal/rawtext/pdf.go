package rawtext

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"go.uber.org/zap"
)

func (p *Producer) extractPDF(path string) (*Document, error) {
	ctx, err := readPDF(path)
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, ctx.PageCount)
	totalChars := 0
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := pageText(ctx, pageNr)
		if pageText == "" && p.UseOCR && p.PageOCR != nil {
			pageText = p.PageOCR(path, pageNr)
			if pageText != "" {
				p.logger.Debug("ocr fallback produced text",
					zap.Int("page", pageNr),
					zap.Int("chars", len(pageText)),
				)
			}
		}
		pages = append(pages, pageText)
		totalChars += len([]rune(pageText))
	}

	text := strings.Join(pages, "\n\n")

	doc := &Document{
		Path:       path,
		Format:     FormatPDF,
		Text:       text,
		Pages:      pages,
		Properties: pdfProperties(ctx),
		Quality:    measure(ctx, text, totalChars),
	}

	return doc, nil
}

// Sniff reads only what extractor selection needs: the producer metadata
// string and the text of the first page.
func (p *Producer) Sniff(path string) (producer, firstPage string, err error) {
	ctx, err := readPDF(path)
	if err != nil {
		return "", "", err
	}
	if ctx.PageCount > 0 {
		firstPage = pageText(ctx, 1)
	}
	return ctx.Producer, firstPage, nil
}

func readPDF(path string) (*model.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}
	return ctx, nil
}

// pdfProperties collects document information. Metadata is best effort:
// missing entries are simply absent from the map.
func pdfProperties(ctx *model.Context) map[string]any {
	props := map[string]any{
		"format":     "PDF",
		"page_count": ctx.PageCount,
	}
	for key, value := range map[string]string{
		"title":    ctx.Title,
		"author":   ctx.Author,
		"subject":  ctx.Subject,
		"producer": ctx.Producer,
		"creator":  ctx.Creator,
	} {
		if strings.TrimSpace(value) != "" {
			props[key] = strings.TrimSpace(value)
		}
	}
	return props
}

func pageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

func measure(ctx *model.Context, text string, totalChars int) *Quality {
	var charsPerPage float64
	if ctx.PageCount > 0 {
		charsPerPage = float64(totalChars) / float64(ctx.PageCount)
	}
	return &Quality{
		PageCount:       ctx.PageCount,
		CharsPerPage:    charsPerPage,
		PrintableRatio:  printableRatio(text),
		HasImageStreams: hasImageStreams(ctx),
	}
}

// hasImageStreams checks whether the PDF carries image XObjects, a strong
// signal of a scanned document when combined with low text density.
func hasImageStreams(ctx *model.Context) bool {
	if ctx.Optimize != nil {
		for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
				return true
			}
		}
	}
	for _, entry := range ctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(types.Name); isName && name == "Image" {
				return true
			}
		}
	}
	return false
}

var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromContentStream walks the page content operators and collects text
// shown by Tj, TJ and ' while translating positioning operators (Td, TD,
// T*) into whitespace.
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				if text := decodePDFString(m[1]); text != "" {
					sb.WriteByte('\n')
					sb.WriteString(text)
				}
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return cleanPageText(sb.String())
}

// decodePDFString resolves backslash escapes, including octal byte values.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// cleanPageText drops unprintable runes and collapses runs of spaces while
// keeping line structure, which the section splitter depends on.
func cleanPageText(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteByte('\n')
			prevSpace = true
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
