// Package rank orders deduplicated candidates for disambiguation.
package rank

import (
	"sort"

	"github.com/openbiograph/biograph/internal/core/model"
)

// Ranker sorts candidates and truncates to a bounded disambiguation set.
// Encyclopedia results sort before everything else regardless of score;
// the source is treated as ground truth when available. Within a bucket,
// candidates sort by the weighted composite of self-reported confidence
// and positional similarity.
type Ranker struct {
	ConfidenceWeight float64
	SimilarityWeight float64
	Limit            int
}

func New(confidenceWeight, similarityWeight float64, limit int) *Ranker {
	return &Ranker{
		ConfidenceWeight: confidenceWeight,
		SimilarityWeight: similarityWeight,
		Limit:            limit,
	}
}

func (r *Ranker) composite(c model.Candidate) float64 {
	return r.ConfidenceWeight*c.Confidence + r.SimilarityWeight*c.SimilarityScore
}

func (r *Ranker) Rank(candidates []model.Candidate) []model.Candidate {
	ranked := make([]model.Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		iWiki := ranked[i].SourceType == model.SourceWikipedia
		jWiki := ranked[j].SourceType == model.SourceWikipedia
		if iWiki != jWiki {
			return iWiki
		}
		return r.composite(ranked[i]) > r.composite(ranked[j])
	})

	if r.Limit > 0 && len(ranked) > r.Limit {
		ranked = ranked[:r.Limit]
	}
	return ranked
}
