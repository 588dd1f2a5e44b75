package domain

// rule is an explicit, named validation step.
//
// ID must be stable across versions. Apply must be deterministic and side-effect
// free apart from the candidate it is handed.
type rule struct {
	ID    string
	Apply func(*candidate) error
}

// candidate is the state threaded through the rules. Rules run in order, so a
// rule may rely on fields filled in by an earlier one.
type candidate struct {
	raw    string
	value  string
	labels []string
	opts   Options
}

// validateRules runs rules in order, returning the first failure.
func validateRules(c *candidate, rules []rule) error {
	for _, r := range rules {
		if err := r.Apply(c); err != nil {
			return err
		}
	}
	return nil
}
