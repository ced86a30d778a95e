package cmd

import (
	"github.com/etnz/cashbook/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// A main package calls Completion().Complete(name) before parsing flags: when
// the shell asks for completions it prints them and exits.
func Completion() *complete.Command {
	kinds := predict.Set{"income", "expense"}
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
			"verbose":     predict.Nothing,
			"markdown":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"k": kinds,
				"d": predict.Something,
				"v": predict.Something,
			}},
			"edit": {Flags: map[string]complete.Predictor{
				"id": predict.Something,
				"f":  predict.Set{"description", "value"},
				"to": predict.Something,
			}},
			"rm": {Flags: map[string]complete.Predictor{
				"id": predict.Something,
				"y":  predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"k":    kinds,
				"head": predict.Something,
				"tail": predict.Something,
				"json": predict.Nothing,
			}},
			"summary": {},
			"fmt": {Flags: map[string]complete.Predictor{
				"coerce": predict.Nothing,
				"drop":   predict.Nothing,
			}},
			"topic": {Args: predict.Set(append(topics, docs.Index))},
		},
	}
}
