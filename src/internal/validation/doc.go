// Package validation checks request bodies against per-endpoint schemas.
//
// A schema is an ordered list of rules. Check evaluates them in order and
// stops at the first violation, so the key reported for a given body is
// always the same. The two faults produced are MISSING_KEY and INVALID_VALUE
// domain errors.
//
// Once a body passes its schema the Decode* functions build a typed request,
// so handlers never look keys up in a map again:
//
//	req, err := validation.DecodeComponentStart(body)
//	if err != nil {
//	    return nil, err
//	}
//	return nil, vf.StartComponent(req.Name, req.Core, req.Type)
package validation
