package miniapp

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

// runREPL запускает интерактивный цикл поверх хранилищ. Команды
// читают моментальные снимки состояния и вызывают методы мутаций;
// ошибки печатаются пользователю, состояние при этом остаётся
// последним подтверждённым.
func runREPL(ctx context.Context, a *App) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Print("shop> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			fmt.Println("commands: status, refresh, plans, buy <plan_id> <days>, trial,")
			fmt.Println("  tickets, open <id>, reply <id> <text>, close <id> <text>,")
			fmt.Println("  promo <code>, login, logout, exit")
		case "status":
			a.printStatus()
		case "refresh":
			if err := a.session.Refresh(ctx); err != nil {
				fmt.Println("refresh failed:", err)
			}
		case "plans":
			a.printPlans()
		case "buy":
			a.buy(ctx, parts[1:])
		case "trial":
			if err := a.gw.ActivateTrial(ctx); err != nil {
				fmt.Println("trial activation failed:", err)
			} else if err := a.session.Refresh(ctx); err != nil {
				fmt.Println("refresh failed:", err)
			}
		case "tickets":
			a.printTickets(ctx)
		case "open":
			a.openTicket(ctx, parts[1:])
		case "reply":
			a.replyTicket(ctx, parts[1:])
		case "close":
			a.closeTicket(ctx, parts[1:])
		case "promo":
			a.activatePromo(ctx, parts[1:])
		case "login":
			a.loginWeb(ctx)
		case "logout":
			a.logout(ctx)
			fmt.Println("logged out")
		case "exit", "quit":
			return
		default:
			fmt.Println("unknown command, type 'help'")
		}
	}
}

func (a *App) printStatus() {
	view := a.session.Snapshot()
	if !view.Authenticated {
		fmt.Println("not authenticated")
		return
	}
	fmt.Printf("%s — %s\n", view.Brand.Name, view.Brand.Slogan)
	fmt.Printf("user: %s (@%s), balance %.2f %s\n",
		view.User.Name, view.User.Username, view.User.Balance, view.DefaultCurrency)
	if view.Subscription == nil {
		fmt.Println("subscription: none")
	} else {
		fmt.Printf("subscription: %s, plan %q, expires %s, devices %d\n",
			view.Subscription.Status, view.Subscription.PlanName,
			view.Subscription.ExpireAt.Format(time.DateOnly),
			view.Subscription.ActiveDevicesCount)
	}
	if view.TicketUnread > 0 {
		fmt.Printf("unread tickets: %d\n", view.TicketUnread)
	}
}

func (a *App) printPlans() {
	view := a.session.Snapshot()
	if !view.Authenticated {
		fmt.Println("not authenticated")
		return
	}
	for _, plan := range view.Plans {
		fmt.Printf("[%d] %s — %s\n", plan.ID, plan.Name, plan.Description)
		for _, d := range plan.Durations {
			price, ok := d.PriceFor(view.DefaultCurrency)
			if !ok {
				continue
			}
			fmt.Printf("    %d days: %s %s\n", d.Days, price.Amount, price.Currency)
		}
	}
}

func (a *App) buy(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: buy <plan_id> <days>")
		return
	}
	planID, err1 := strconv.ParseInt(args[0], 10, 64)
	days, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("usage: buy <plan_id> <days>")
		return
	}
	res, err := a.gw.Buy(ctx, models.PurchaseRequest{PlanID: planID, DurationDays: days})
	if err != nil {
		fmt.Println("purchase failed:", err)
		return
	}
	switch {
	case res.PaymentURL != "":
		fmt.Println("complete payment at:", res.PaymentURL)
	case res.OK:
		fmt.Println("purchase completed")
	default:
		fmt.Println("purchase rejected:", res.Message)
	}
}

func (a *App) printTickets(ctx context.Context) {
	if err := a.tickets.List(ctx); err != nil {
		fmt.Println("failed to load tickets:", err)
		return
	}
	for _, t := range a.tickets.Tickets() {
		fmt.Printf("[%d] %-10s %s\n", t.ID, t.Status, t.Subject)
	}
}

func (a *App) openTicket(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: open <id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("usage: open <id>")
		return
	}
	if err := a.tickets.Open(ctx, id); err != nil {
		fmt.Println("failed to open ticket:", err)
		return
	}
	t := a.tickets.Current()
	if t == nil {
		return
	}
	fmt.Printf("#%d %s (%s)\n", t.ID, t.Subject, t.Status)
	for _, m := range t.Messages {
		fmt.Printf("  %s [%s]: %s\n", m.CreatedAt.Format(time.DateTime), m.Sender, m.Text)
	}
}

func (a *App) replyTicket(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: reply <id> <text>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("usage: reply <id> <text>")
		return
	}
	if err := a.tickets.Reply(ctx, id, strings.Join(args[1:], " "), ""); err != nil {
		fmt.Println("reply failed:", err)
	}
}

func (a *App) closeTicket(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: close <id> [resolution]")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("usage: close <id> [resolution]")
		return
	}
	if err := a.tickets.Close(ctx, id, strings.Join(args[1:], " ")); err != nil {
		fmt.Println("close failed:", err)
	}
}

func (a *App) activatePromo(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: promo <code>")
		return
	}
	res, err := a.gw.ActivatePromocode(ctx, args[0])
	if err != nil {
		fmt.Println("promocode activation failed:", err)
		return
	}
	if res.OK {
		fmt.Println("promocode activated")
	} else {
		fmt.Println("promocode rejected:", res.Message)
	}
}

// loginWeb выполняет вход по веб-учётным данным; пароль читается
// без эха.
func (a *App) loginWeb(ctx context.Context) {
	fmt.Print("web username: ")
	reader := bufio.NewReader(os.Stdin)
	username, err := reader.ReadString('\n')
	if err != nil {
		return
	}
	fmt.Print("password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("failed to read password:", err)
		return
	}
	res, err := a.gw.Login(ctx, strings.TrimSpace(username), string(password))
	if err != nil {
		fmt.Println("login failed:", err)
		return
	}
	if res.Token != "" {
		a.gw.SetToken(res.Token)
	}
	if err := a.session.Refresh(ctx); err != nil {
		fmt.Println("refresh failed:", err)
	}
}
