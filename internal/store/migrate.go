package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/examgen/ent/schema"
)

// Table names.
const (
	examRunsTable  = "exam_runs"
	llmEventsTable = "llm_request_events"
)

// tables builds the migration tables from the ent schema definitions.
func tables() ([]*schema.Table, error) {
	defs := []struct {
		name   string
		entity string
		def    ent.Interface
	}{
		{examRunsTable, "examrun", entschema.ExamRun{}},
		{llmEventsTable, "llmrequestevent", entschema.LLMRequestEvent{}},
	}

	out := make([]*schema.Table, 0, len(defs))
	for _, d := range defs {
		t, err := tableFor(d.name, d.entity, d.def)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// tableFor maps one schema to a table with an auto-increment id, one column
// per field (mixin fields first) and one index per declared index. Index
// names follow ent's <entity>_<fields> convention.
func tableFor(name, entity string, def ent.Interface) (*schema.Table, error) {
	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range def.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, def.Fields()...)
	indexes = append(indexes, def.Indexes()...)

	t := schema.NewTable(name)
	t.AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true})

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		c := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Size:     int64(d.Size),
			Unique:   d.Unique,
			Nullable: d.Optional || d.Nillable,
		}
		// Function defaults (time.Now) are applied on insert instead.
		switch v := d.Default.(type) {
		case string, bool, int, int64, float64:
			c.Default = v
		}
		t.AddColumn(c)
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		t.AddIndex(entity+"_"+strings.Join(d.Fields, "_"), d.Unique, d.Fields)
	}
	return t, nil
}

// migrate creates or alters the tables to match the schemas.
func migrate(ctx context.Context, drv dialect.Driver) error {
	ts, err := tables()
	if err != nil {
		return err
	}
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, ts...)
}
