package loader

import (
	"context"
	"fmt"

	"github.com/tidwall/jsonc"

	"skilledstack.dev/internal/models"
)

// Result is the decoded outcome of one slot
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the slot was retrieved and decoded
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Bundle holds the typed results of one batch
type Bundle struct {
	Projects    Result[[]models.Project]
	Timeline    Result[[]models.TimelineEvent]
	Config      Result[models.SiteConfig]
	Skills      Result[[]models.Skill]
	Experiences Result[[]models.Experience]
}

// Load fetches a batch and decodes every slot
func (l *Loader) Load(ctx context.Context) Bundle {
	return l.Decode(l.Fetch(ctx))
}

// Decode converts an already fetched batch into a Bundle
func (l *Loader) Decode(batch Batch) Bundle {
	var b Bundle
	b.Projects = decodeSlot(l, batch[Projects], models.DecodeList[models.Project])
	b.Timeline = decodeSlot(l, batch[Timeline], models.DecodeList[models.TimelineEvent])
	b.Config = decodeSlot(l, batch[SiteConfig], models.DecodeSiteConfig)
	b.Skills = decodeSlot(l, batch[Skills], models.DecodeList[models.Skill])
	b.Experiences = decodeSlot(l, batch[Experiences], models.DecodeList[models.Experience])
	return b
}

func decodeSlot[T any](l *Loader, slot Slot, decode func([]byte) (T, error)) Result[T] {
	if !slot.OK() {
		return Result[T]{Err: slot.Err}
	}

	value, err := decode(jsonc.ToJSON(slot.Data))
	if err != nil {
		err = fmt.Errorf("failed to parse %s: %w", slot.Locator, err)
		l.logger.Warn("could not decode data",
			"resource", slot.Resource.String(),
			"locator", slot.Locator,
			"error", err,
		)
		return Result[T]{Err: err}
	}
	return Result[T]{Value: value}
}
