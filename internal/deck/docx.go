package deck

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/transcript-flow/internal/paginate"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
	headSize = 15
)

type docxSink struct{}

// NewDocxSink returns a Sink rendering decks as styled docx documents:
// one heading per slide, continuation slides marked as such.
func NewDocxSink() Sink {
	return docxSink{}
}

func (docxSink) Write(path, title string, sections []paginate.Section) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, section := range sections {
		for _, page := range section.Pages {
			doc.AddParagraph("")
			heading := paginate.ContinuationTitle(section.Title, page.Ordinal)
			addStyledRun(doc.AddParagraph(""), heading, true, headSize)
			addStyledRun(doc.AddParagraph(""), page.Text, false, fontSize)
		}
	}

	return doc.SaveTo(path)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
