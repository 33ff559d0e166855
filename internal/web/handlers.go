package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valpere/perevodchik/internal"
	"github.com/valpere/perevodchik/internal/controller"
)

var labelKeys = []string{
	"Title",
	"Subtitle",
	"OriginalTextLabel",
	"LanguageLabel",
	"TranslateButton",
	"JudgeButton",
	"TranslationHeading",
	"GradeHeading",
	"MockBanner",
}

// page is the view model of templates/index.html.
type page struct {
	Locale         string
	L              map[string]string
	Mock           bool
	State          string
	Languages      []string
	Language       string
	OriginalText   string
	TranslatedText string
	Translation    string
	TranslationOK  bool
	Grade          string
	GradeOK        bool
	Error          string
}

func (s *Server) newPage() *page {
	langs := make([]string, len(internal.SupportedLanguages))
	for i, l := range internal.SupportedLanguages {
		langs[i] = l.Name
	}

	return &page{
		Locale:    s.catalog.Locale(),
		L:         s.catalog.Labels(labelKeys...),
		Mock:      s.opts.Mock,
		State:     controller.StateIdle.String(),
		Languages: langs,
		Language:  internal.English.Name,
	}
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.newPage())
}

func (s *Server) submit(c *gin.Context) {
	sub := controller.Submission{
		OriginalText:   c.PostForm("original_text"),
		Language:       c.DefaultPostForm("language", internal.English.Name),
		TranslatedText: c.PostForm("translated_text"),
		Action:         controller.Action(c.PostForm("action")),
	}

	p := s.newPage()
	p.OriginalText = sub.OriginalText
	if l, ok := internal.LanguageByName(sub.Language); ok {
		p.Language = l.Name
	}

	out, err := s.ctrl.Handle(c.Request.Context(), sub)
	if err != nil {
		var verr *controller.ValidationError
		if !errors.As(err, &verr) {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		p.Error = s.catalog.T(verr.MessageID, verr.Data)
		p.TranslatedText = sub.TranslatedText
		p.Translation = sub.TranslatedText
		p.TranslationOK = true
		c.HTML(http.StatusBadRequest, "index.html", p)
		return
	}

	p.State = out.State.String()
	p.OriginalText = out.OriginalText
	p.Language = out.Language.Name
	p.Translation = out.Translation.Text
	p.TranslationOK = out.Translation.Success
	p.Grade = out.Grade.Text
	p.GradeOK = out.Grade.Success
	if out.HasTranslation() {
		p.TranslatedText = out.Translation.Text
	}

	c.HTML(http.StatusOK, "index.html", p)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "mock": s.opts.Mock})
}
