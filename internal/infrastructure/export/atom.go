package export

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/tu-usuario/portal-socios/internal/application/ports"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
)

var _ ports.EventFeedBuilder = (*AtomFeedBuilder)(nil)

// AtomFeedBuilder construye el feed Atom público de próximos eventos con
// etree (RFC 4287: feed/entry con id, title, updated y link por entrada).
type AtomFeedBuilder struct{}

// NewAtomFeedBuilder construye el builder.
func NewAtomFeedBuilder() *AtomFeedBuilder { return &AtomFeedBuilder{} }

// Build serializa el feed. baseURL es la URL pública del portal, para los
// enlaces de cada evento.
func (b *AtomFeedBuilder) Build(baseURL string, events []*entity.Event) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	feed := doc.CreateElement("feed")
	feed.CreateAttr("xmlns", "http://www.w3.org/2005/Atom")
	feed.CreateElement("id").SetText(baseURL + "/events")
	feed.CreateElement("title").SetText("Próximos eventos")
	feed.CreateElement("updated").SetText(time.Now().UTC().Format(time.RFC3339))
	link := feed.CreateElement("link")
	link.CreateAttr("rel", "self")
	link.CreateAttr("href", baseURL+"/api/events/feed")

	for _, e := range events {
		entry := feed.CreateElement("entry")
		entry.CreateElement("id").SetText(fmt.Sprintf("%s/events/%s", baseURL, e.ID))
		entry.CreateElement("title").SetText(e.Title)
		updated := time.Now().UTC()
		if e.Date != nil {
			updated = e.Date.UTC()
		}
		entry.CreateElement("updated").SetText(updated.Format(time.RFC3339))
		entryLink := entry.CreateElement("link")
		entryLink.CreateAttr("href", fmt.Sprintf("%s/events/%s", baseURL, e.ID))
		if e.Description != "" {
			summary := entry.CreateElement("summary")
			summary.SetText(e.Description)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("atom: serializar feed: %w", err)
	}
	return out, nil
}
