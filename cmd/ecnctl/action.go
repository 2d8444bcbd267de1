package main

import "github.com/seastack/ecnctl/internal/model"

// usageError is an invalid flag combination, detected before any store or
// config access.
type usageError string

func (e usageError) Error() string { return string(e) }

// flagValues is the parsed flag state buildAction validates. thresholds
// holds only the threshold flags explicitly set on the command line.
type flagValues struct {
	list       bool
	profileSet bool
	profile    string
	thresholds map[string]string // short code -> value
}

// setOp is one pending single-field update.
type setOp struct {
	code  string
	value string
}

// action is the single validated intent of one invocation. A nil action
// (with nil error) means nothing was requested and the caller should print
// help and exit non-zero.
type action struct {
	list    bool
	profile string
	ops     []setOp // apply order: gmax, gmin, ymax, ymin, rmax, rmin
}

// buildAction turns the flag set into exactly one intent. Validation is a
// set of explicit predicates over parsed flags, never raw argv counting.
func buildAction(fv flagValues) (*action, error) {
	if fv.list {
		if fv.profileSet || len(fv.thresholds) > 0 {
			return nil, usageError("no set options allowed when list specified")
		}
		return &action{list: true}, nil
	}

	if fv.profileSet {
		if len(fv.thresholds) == 0 {
			return nil, usageError("specify at least one threshold parameter to set")
		}
		act := &action{profile: fv.profile}
		for _, t := range model.Thresholds {
			if v, ok := fv.thresholds[t.Code()]; ok {
				act.ops = append(act.ops, setOp{code: t.Code(), value: v})
			}
		}
		return act, nil
	}

	return nil, nil
}
