package cmd

import (
	"github.com/etnz/rebalance/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	sub := make(map[string]*complete.Command, len(Commands))
	for _, c := range Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["topic"].Args = predict.Set(topics)
	sub["help"] = &complete.Command{}
	sub["flags"] = &complete.Command{}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"holdings-file": predict.Files("*.json"),
			"targets-file":  predict.Files("*.json"),
			"prices":        predict.Files("*"),
			"threshold":     predict.Something,
			"log-level":     predict.Set{"debug", "info", "warn", "error", "disabled"},
			"log-json":      predict.Nothing,
			"pretty":        predict.Nothing,
		},
	}
}
