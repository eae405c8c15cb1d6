package agent

import (
	"context"
	"fmt"

	"github.com/kavyad/spendwise"
	"github.com/kavyad/spendwise/date"
	"github.com/kavyad/spendwise/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand and improve their personal spending.
			Analyze their spending patterns and provide actionable insights; answer questions about
			their expenses clearly and concisely; be encouraging while being honest about their habits.

			Keep responses concise but informative, always reference specific numbers from the data,
			and use the user's own currency.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper builds the expert in charge of the user's expense ledger.
// Its function library is bound to the given user record and answers from
// the aggregation engine, never from memory.
func NewBookkeeper(u *spendwise.User) *Expert {
	lib := []Function{
		summaryFunc(u),
		recentFunc(u),
		budgetFunc(u),
		searchFunc(u),
		balancesFunc(u),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It is in charge of reading the user's expense ledger.
		It can compute spending summaries over any trailing window, list recent or matching
		expenses, report account balances and the monthly budget status.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
				You are a bookkeeper in charge of the user's expense ledger.
				You know how to use the Tools to extract relevant information about the user's
				spending. You are part of a team of experts, yours is everything about the
				user's expenses; pardon their approximative language and figure out what they meant.

				Here is the current state of the ledger:

%s
			`, Briefing(u, date.Today()))}}},
		},
		Library: NewLibrary(lib),
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

// intArg reads an optional numeric argument. The model sends numbers as
// float64 in the args map.
func intArg(args map[string]any, key string, def int) (int, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return def, fmt.Errorf("argument %q is not a number as expected but %T", key, v)
	}
	return int(f), nil
}

func summaryFunc(u *spendwise.User) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary computes the spending over a trailing window of days ending today:
			total spent, and the breakdown by category and by account with their shares.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"window_days": {
						Type:        genai.TypeNumber,
						Description: "Number of trailing days, today included. Defaults to 30. Zero or negative covers the whole ledger.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted spending summary with category and account breakdowns.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			days, err := intArg(args, "window_days", 30)
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			s := spendwise.NewSummary(u.Expenses, days, date.Today())
			return outputResponse(id, "Summary", renderer.SummaryMarkdown(s, u.Currency))
		},
	}
}

func recentFunc(u *spendwise.User) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "RecentExpenses",
			Description: `RecentExpenses lists the most recently recorded expenses, newest first.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"count": {
						Type:        genai.TypeNumber,
						Description: "How many expenses to list. Defaults to 5.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the most recent expenses.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			n, err := intArg(args, "count", 5)
			if err != nil {
				return errorResponse(id, "RecentExpenses", err)
			}
			recent := spendwise.RecentEntries(u.Expenses, n)
			return outputResponse(id, "RecentExpenses", renderer.EntriesMarkdown("Recent Expenses", recent, u.Currency))
		},
	}
}

func budgetFunc(u *spendwise.User) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "BudgetStatus",
			Description: `BudgetStatus reports the monthly budget consumption over the last 30 days:
			budget, spent, remaining and the share used.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted budget status.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			if !u.Onboarded() {
				return errorResponse(id, "BudgetStatus", fmt.Errorf("no monthly budget set, the user has not onboarded yet"))
			}
			spent := spendwise.NewSummary(u.Expenses, 30, date.Today()).Total
			b := spendwise.NewBudgetStatus(u.Budget(), spendwise.M(spent, u.Currency))
			return outputResponse(id, "BudgetStatus", renderer.BudgetMarkdown(b))
		},
	}
}

func searchFunc(u *spendwise.User) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SearchExpenses",
			Description: `SearchExpenses lists expenses matching a case-insensitive substring of
			their category, account, amount or date.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"term": {
						Type:        genai.TypeString,
						Description: "The substring to search for. Empty matches everything.",
					},
				},
				Required: []string{"term"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the matching expenses.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			term, ok := args["term"].(string)
			if !ok {
				return errorResponse(id, "SearchExpenses", fmt.Errorf("argument 'term' is not a string as expected but %T", args["term"]))
			}
			matches := spendwise.Search(u.Expenses, term)
			title := fmt.Sprintf("Expenses matching %q", term)
			return outputResponse(id, "SearchExpenses", renderer.EntriesMarkdown(title, matches, u.Currency))
		},
	}
}

func balancesFunc(u *spendwise.User) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Balances",
			Description: `Balances reports the current balance of each tracked account and their total.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of account balances.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, "Balances", renderer.BalancesMarkdown(u))
		},
	}
}
