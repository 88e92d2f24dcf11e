package columnar

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/colgraph/core"
	"github.com/katalvlaran/colgraph/rules"
)

// RulesFrame is GraphAssociationRules' output, one row per frequent item.
type RulesFrame struct {
	Item             Column[string]
	Support          Column[float64]
	LiftScore        Column[float64]
	Pattern          Column[uint32]
	Consequents      Column[[]string]
	ConfidenceScores Column[[]float64]
}

// Len returns the number of rows.
func (f *RulesFrame) Len() int { return f.Item.Len() }

// GraphAssociationRules mines association rules from transaction rows. freq
// may be nil unless kw.Weighted is set; when given, rows with a null
// frequency are dropped like rows with a null transaction or item.
//
// Errors: core.ErrLengthMismatch, core.ErrNegativeWeight, core.ErrInvalidOption.
func GraphAssociationRules[T comparable](tx Column[T], item Column[string], freq *Column[float64], kw RuleKwargs) (*RulesFrame, error) {
	if err := validate(&kw); err != nil {
		return nil, err
	}
	if kw.Weighted && freq == nil {
		return nil, errors.Wrap(core.ErrInvalidOption, "columnar: weighted rules need a frequency column")
	}
	lengths := []int{tx.Len(), item.Len()}
	if freq != nil {
		lengths = append(lengths, freq.Len())
	}
	if err := core.CheckLengths(lengths...); err != nil {
		return nil, errors.Wrap(err, "columnar")
	}

	records := make([]rules.Record[T], 0, tx.Len())
	for i := 0; i < tx.Len(); i++ {
		if tx.IsNull(i) || item.IsNull(i) || (freq != nil && freq.IsNull(i)) {
			continue
		}
		r := rules.Record[T]{Transaction: tx.Values[i], Item: item.Values[i]}
		if freq != nil {
			r.Weight = freq.Values[i]
		}
		records = append(records, r)
	}

	res, err := rules.Mine(records,
		rules.WithMinSupport(kw.MinSupport),
		rules.WithMinConfidence(kw.MinConfidence),
		rules.WithMaxItemsetSize(kw.MaxItemsetSize),
		rules.WithWeighted(kw.Weighted),
		rules.WithMaxConsequents(kw.MaxConsequents),
		rules.WithMaxCandidates(kw.MaxCandidates),
		rules.WithLogger(kw.logger()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "columnar")
	}

	m := len(res.Items)
	out := &RulesFrame{
		Item:             NewColumn("item", make([]string, m)),
		Support:          NewColumn("support", make([]float64, m)),
		LiftScore:        NewColumn("lift_score", make([]float64, m)),
		Pattern:          NewColumn("pattern", make([]uint32, m)),
		Consequents:      NewColumn("consequents", make([][]string, m)),
		ConfidenceScores: NewColumn("confidence_scores", make([][]float64, m)),
	}
	for i, r := range res.Items {
		out.Item.Values[i] = r.Item
		out.Support.Values[i] = r.Support
		out.LiftScore.Values[i] = r.Lift
		out.Pattern.Values[i] = r.Pattern
		out.Consequents.Values[i] = r.Consequents
		out.ConfidenceScores.Values[i] = r.Confidences
	}

	return out, nil
}
