// Package runbook loads HCL files describing solver checks and executes them
// against a solution.Registry.
//
//	logging {
//	  level  = "debug"   # debug | info | warn | error
//	  format = "text"    # text | json
//	}
//
//	check "rolls" {
//	  problem = "paper-rolls"      # registry name; defaults to the label
//	  input   = "inputs/rolls.txt" # relative to the runbook file
//	  expect  = 13
//	}
//
// A check reads its input from a file (input) or inline (text). When expect
// is set the agreed answer must render to the same text; otherwise the check
// only requires every solution to run and agree.
package runbook
