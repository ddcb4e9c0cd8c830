package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamRun is one invocation of the exam pipeline, from reading the sources
// to the last rendered document.
type ExamRun struct {
	ent.Schema
}

func (ExamRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable().
			Comment("UUID tagged onto every LLM event of the run"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.String("title"),
		field.Strings("inputs").
			Comment("Primary document first, then supplements"),
		field.Int("mcq_count").
			Default(0),
		field.Int("fib_count").
			Default(0),
		field.Int("tf_count").
			Default(0),
		field.String("language").
			Default(""),
		field.Bool("split").
			Default(false),
		field.Strings("outputs").
			Optional().
			Comment("Written document paths"),
		field.String("status").
			Default("running").
			Comment("running, ok, or the failure kind"),
		field.String("error_message").
			Default(""),
	}
}

func (ExamRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
		index.Fields("status"),
	}
}
