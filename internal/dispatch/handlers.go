package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/trenerai/trener-intent/internal/agent"
	"github.com/trenerai/trener-intent/internal/clients"
	"github.com/trenerai/trener-intent/internal/command"
)

const helpText = `**Dostępne komendy:**

**Podopieczni:**
- ` + "`dodaj podopiecznego Jan Kowalski, 30 lat, 80kg`" + `
- ` + "`dodaj Jana 30 lat`" + ` *(skrócona forma)*
- ` + "`lista podopiecznych`" + `
- ` + "`pokaż dane Jan`" + `
- ` + "`usuń podopiecznego Jan`" + `

**Treningi:**
- ` + "`wygeneruj trening, trudność: hard`" + `
- ` + "`circuit dla 5 osób`" + `
- ` + "`lista treningów`" + `

**Inne:**
- ` + "`pomoc`" + ` - ta lista`

// Handlers builds the intent dispatch table over the record store and
// the plan generator. Create, delete and plan generation carry a
// Confirm builder and therefore go through the staging flow.
func Handlers(store clients.Store, plans agent.PlanGenerator) map[command.Intent]Handler {
	return map[command.Intent]Handler{
		command.IntentHelp: {
			Execute: func(_ context.Context, _ map[string]any) (*command.Result, error) {
				return &command.Result{Success: true, Message: helpText}, nil
			},
		},

		command.IntentCreateClient: {
			Confirm: createClientPrompt,
			Execute: func(ctx context.Context, data map[string]any) (*command.Result, error) {
				return createClient(ctx, store, data)
			},
		},

		command.IntentListClients: {
			Execute: func(ctx context.Context, _ map[string]any) (*command.Result, error) {
				return listClients(ctx, store)
			},
		},

		command.IntentShowClient: {
			Execute: func(ctx context.Context, data map[string]any) (*command.Result, error) {
				return showClient(ctx, store, data)
			},
		},

		command.IntentDeleteClient: {
			Confirm: deleteClientPrompt,
			Execute: func(ctx context.Context, data map[string]any) (*command.Result, error) {
				return deleteClient(ctx, store, data)
			},
		},

		command.IntentCreateTrainingPlan: {
			Confirm: createPlanPrompt,
			Execute: func(ctx context.Context, data map[string]any) (*command.Result, error) {
				return createPlan(ctx, store, plans, data)
			},
		},

		command.IntentListTrainingPlans: {
			Execute: func(ctx context.Context, _ map[string]any) (*command.Result, error) {
				return listPlans(ctx, store)
			},
		},
	}
}

func createClientPrompt(data map[string]any) string {
	return fmt.Sprintf(`Dodać podopiecznego?

| Pole | Wartość |
|------|---------|
| Imię | %s |
| Wiek | %s |
| Waga | %s kg |
| Cel | %s |

Potwierdź: **tak** / **anuluj**`,
		strField(data, "name", "-"),
		fieldOrDash(data, "age"),
		fieldOrDash(data, "weight"),
		strField(data, "goals", "-"))
}

func createClient(ctx context.Context, store clients.Store, data map[string]any) (*command.Result, error) {
	client := &clients.Client{
		Name:   strField(data, "name", "Nieznany"),
		Age:    intField(data, "age", 0),
		Weight: floatField(data, "weight", 0),
		Height: floatField(data, "height", 0),
		Goals:  strField(data, "goals", ""),
	}

	created, err := store.Create(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &command.Result{
		Success: true,
		Message: fmt.Sprintf("✓ Dodano podopiecznego **%s** (ID: %s)", created.Name, created.ID),
		Data:    map[string]any{"client_id": created.ID, "name": created.Name},
	}, nil
}

func listClients(ctx context.Context, store clients.Store) (*command.Result, error) {
	all, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	if len(all) == 0 {
		return &command.Result{Success: true, Message: "Brak zarejestrowanych podopiecznych."}, nil
	}

	var table strings.Builder
	table.WriteString("| Imię | Wiek | Waga | Cel |\n|---|---|---|---|\n")
	for _, c := range all {
		table.WriteString(fmt.Sprintf("| %s | %s | %s kg | %s |\n",
			c.Name, orDash(c.Age), orDash(c.Weight), orDashStr(c.Goals)))
	}

	return &command.Result{
		Success: true,
		Message: fmt.Sprintf("**Lista podopiecznych (%d):**\n\n%s", len(all), table.String()),
		Data:    map[string]any{"count": len(all)},
	}, nil
}

func showClient(ctx context.Context, store clients.Store, data map[string]any) (*command.Result, error) {
	name := strField(data, "name", "")

	client, err := store.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if client == nil {
		return &command.Result{
			Success: false,
			Message: fmt.Sprintf("Nie znaleziono podopiecznego: **%s**", name),
		}, nil
	}

	msg := fmt.Sprintf(`**Profil: %s**

| Pole | Wartość |
|------|---------|
| Wiek | %s |
| Waga | %s kg |
| Cel | %s |
| Dodany | %s |`,
		client.Name, orDash(client.Age), orDash(client.Weight),
		orDashStr(client.Goals), client.CreatedAt.Format("02.01.2006"))

	return &command.Result{
		Success: true,
		Message: msg,
		Data: map[string]any{
			"client_id": client.ID,
			"name":      client.Name,
			"age":       client.Age,
			"weight":    client.Weight,
			"goals":     client.Goals,
		},
	}, nil
}

func deleteClientPrompt(data map[string]any) string {
	return fmt.Sprintf(`Usunąć podopiecznego **%s**?

⚠️ Ta operacja jest nieodwracalna.

Potwierdź: **tak** / **anuluj**`, strField(data, "name", "-"))
}

func deleteClient(ctx context.Context, store clients.Store, data map[string]any) (*command.Result, error) {
	name := strField(data, "name", "")

	deleted, err := store.DeleteByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("delete client: %w", err)
	}
	if deleted == nil {
		return &command.Result{
			Success: false,
			Message: fmt.Sprintf("Nie znaleziono: %s", name),
		}, nil
	}

	return &command.Result{
		Success: true,
		Message: fmt.Sprintf("✓ Usunięto podopiecznego **%s**", deleted.Name),
	}, nil
}

func createPlanPrompt(data map[string]any) string {
	target := strField(data, "target_user", "-")
	return fmt.Sprintf(`Wygenerować plan treningowy?

| Parametr | Wartość |
|----------|---------|
| Trudność | %s |
| Tryb | %s |
| Osoby | %d |
| Czas | %d minut |
| Dla | %s |

Potwierdź: **tak** / **anuluj**`,
		strField(data, "difficulty", "medium"),
		strField(data, "mode", "circuit"),
		intField(data, "num_people", 1),
		intField(data, "duration", 45),
		target)
}

func createPlan(ctx context.Context, store clients.Store, plans agent.PlanGenerator, data map[string]any) (*command.Result, error) {
	req := agent.PlanRequest{
		Difficulty: strField(data, "difficulty", "medium"),
		Mode:       strField(data, "mode", "circuit"),
		NumPeople:  intField(data, "num_people", 1),
		Duration:   intField(data, "duration", 45),
		TargetUser: strField(data, "target_user", ""),
	}

	content, err := plans.GeneratePlan(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	saved, err := store.SavePlan(ctx, &clients.TrainingPlan{
		Difficulty: req.Difficulty,
		Mode:       req.Mode,
		NumPeople:  req.NumPeople,
		Duration:   req.Duration,
		TargetUser: req.TargetUser,
		Content:    content,
	})
	if err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	return &command.Result{
		Success: true,
		Message: content,
		Data:    map[string]any{"plan_id": saved.ID},
	}, nil
}

func listPlans(ctx context.Context, store clients.Store) (*command.Result, error) {
	all, err := store.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	if len(all) == 0 {
		return &command.Result{Success: true, Message: "Brak zapisanych treningów."}, nil
	}

	var list strings.Builder
	list.WriteString(fmt.Sprintf("**Historia treningów (%d):**\n\n", len(all)))
	for _, p := range all {
		list.WriteString(fmt.Sprintf("- %s — %s, tryb %s, %d os., %d min\n",
			p.CreatedAt.Format("02.01.2006"), p.Difficulty, p.Mode, p.NumPeople, p.Duration))
	}

	return &command.Result{
		Success: true,
		Message: strings.TrimRight(list.String(), "\n"),
		Data:    map[string]any{"count": len(all)},
	}, nil
}
