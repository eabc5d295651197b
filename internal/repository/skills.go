package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// skillsTables are the tables holding a skills column.
var skillsTables = []string{"trainings", "freelancer_profiles"}

// SkillsReport counts rows per table whose skills value was not stored as
// a JSON array.
type SkillsReport struct {
	Scanned   map[string]int
	Rewritten map[string]int
}

type skillsRow struct {
	ID     uuid.UUID
	Skills *string
}

type SkillsNormalizer struct {
	db *gorm.DB
}

func NewSkillsNormalizer(db *gorm.DB) *SkillsNormalizer {
	return &SkillsNormalizer{db: db}
}

// Normalize rewrites legacy comma separated and NULL skills values as JSON
// arrays in one transaction. With dryRun set it only counts them.
func (n *SkillsNormalizer) Normalize(ctx context.Context, dryRun bool) (*SkillsReport, error) {
	report := &SkillsReport{Scanned: map[string]int{}, Rewritten: map[string]int{}}

	err := n.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range skillsTables {
			var rows []skillsRow
			if err := tx.Table(table).Select("id", "skills").Scan(&rows).Error; err != nil {
				return fmt.Errorf("reading %s: %w", table, err)
			}
			report.Scanned[table] = len(rows)

			for _, row := range rows {
				if row.Skills != nil && model.IsCanonical(*row.Skills) {
					continue
				}
				report.Rewritten[table]++
				if dryRun {
					continue
				}
				value, err := model.ParseNullableSkills(row.Skills).Value()
				if err != nil {
					return err
				}
				if err := tx.Table(table).Where("id = ?", row.ID).Update("skills", value).Error; err != nil {
					return fmt.Errorf("rewriting %s %s: %w", table, row.ID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
