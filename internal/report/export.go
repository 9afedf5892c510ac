package report

import (
	"reflect"

	"koopa/pkg/models"
)

// ExportCheck compares the dashboard export with the catalog artifact.
type ExportCheck struct {
	ArtifactTracks int
	ExportedTracks int
	// Mismatched lists the ranks whose exported record differs from the
	// artifact or exists on one side only.
	Mismatched []int
}

// InSync reports whether the export holds exactly the artifact's records.
func (c *ExportCheck) InSync() bool {
	return c.ArtifactTracks == c.ExportedTracks && len(c.Mismatched) == 0
}

// CheckExport compares exported records with the artifact rank by rank.
func CheckExport(artifact, exported []models.TrackRecord) *ExportCheck {
	check := &ExportCheck{ArtifactTracks: len(artifact), ExportedTracks: len(exported)}

	byRank := make(map[int]models.TrackRecord, len(exported))
	for _, t := range exported {
		byRank[t.Rank] = t
	}

	for _, t := range artifact {
		e, ok := byRank[t.Rank]
		if !ok || !reflect.DeepEqual(t, e) {
			check.Mismatched = append(check.Mismatched, t.Rank)
		}
		delete(byRank, t.Rank)
	}
	for _, t := range exported {
		if _, extra := byRank[t.Rank]; extra {
			check.Mismatched = append(check.Mismatched, t.Rank)
		}
	}
	return check
}
