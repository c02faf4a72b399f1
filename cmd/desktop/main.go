package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"onlinemart-client/internal/api"
	"onlinemart-client/internal/cart"
	"onlinemart-client/internal/catalog"
	"onlinemart-client/internal/config"
	"onlinemart-client/internal/dashboard"
	"onlinemart-client/internal/domain"
	"onlinemart-client/internal/orders"
	"onlinemart-client/internal/session"
	"onlinemart-client/internal/watchlist"
)

// app bundles the sync core for the terminal shell.
type app struct {
	gateway   *api.Client
	sessions  *session.Store
	cart      *cart.Cart
	watch     *watchlist.Watchlist
	shop      *catalog.BuyerShop
	catalog   *catalog.AdminCatalog
	orders    *orders.BuyerOrders
	adminList *orders.AdminOrders
	dashboard *dashboard.AdminDashboard
	insights  *dashboard.BuyerInsights
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	logger := log.New(os.Stderr, "[desktop] ", log.LstdFlags|log.LUTC)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	gateway, err := api.New(cfg.BaseURL, cfg.RequestTimeout, nil)
	if err != nil {
		logger.Fatalf("init gateway: %v", err)
	}

	watch := watchlist.New(gateway, watchlist.ConfirmFirst)
	a := &app{
		gateway:   gateway,
		sessions:  session.NewStore(cfg.SessionFile, logger),
		cart:      cart.New(gateway),
		watch:     watch,
		shop:      catalog.NewBuyerShop(gateway, watch),
		catalog:   catalog.NewAdminCatalog(gateway),
		orders:    orders.NewBuyerOrders(gateway),
		adminList: orders.NewAdminOrders(gateway),
		dashboard: dashboard.NewAdminDashboard(gateway),
		insights:  dashboard.NewBuyerInsights(gateway),
	}

	fmt.Printf("onlinemart desktop shell (api %s). Type \"help\".\n", cfg.BaseURL)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		a.dispatch(context.Background(), strings.Fields(line))
	}
}

// guard applies the authorization guard before any gated command.
func (a *app) guard(role domain.Role) (session.Session, bool) {
	snapshot := a.sessions.Snapshot()
	if session.Authorize(snapshot, role) != session.Allow {
		fmt.Println("please log in first (login <user> <password>)")
		return session.Session{}, false
	}
	return snapshot, true
}

func (a *app) dispatch(ctx context.Context, args []string) {
	switch args[0] {
	case "help":
		printHelp()
	case "register":
		a.register(ctx, args[1:])
	case "login":
		a.login(ctx, args[1:])
	case "logout":
		if err := a.sessions.SignOut(); err != nil {
			fmt.Println(err)
		}
	case "whoami":
		s := a.sessions.Snapshot()
		if !s.IsAuthenticated() {
			fmt.Println("not logged in")
			return
		}
		fmt.Printf("%s (%s)\n", s.Username, s.Role)
	case "products":
		a.products(ctx, strings.Join(args[1:], " "))
	case "watch":
		a.toggleWatch(ctx, args[1:])
	case "watchlist":
		a.watchlist(ctx)
	case "cart":
		a.cartCmd(ctx, args[1:])
	case "checkout":
		a.checkout(ctx)
	case "orders":
		a.buyerOrders(ctx)
	case "order":
		a.buyerOrder(ctx, args[1:])
	case "cancel":
		a.cancelOrder(ctx, args[1:])
	case "insights":
		a.showInsights(ctx)
	case "admin":
		a.adminCmd(ctx, args[1:])
	default:
		fmt.Printf("unknown command %q; try \"help\"\n", args[0])
	}
}

func printHelp() {
	fmt.Print(`commands:
  register <user> <email> <password>   create an account
  login <user-or-email> <password>     sign in
  logout | whoami
  products [query]                     browse the catalog
  watch <product-id>                   toggle watchlist membership
  watchlist                            list watched products
  cart [add <id> [qty] | qty <id> <n> | rm <id> | clear]
  checkout                             place the order
  orders | order <id> | cancel <id>
  insights                             frequent/recent purchases
  admin products                       list products with stock
  admin create <desc> <wholesale> <retail> <stock>
  admin orders | admin order <id>
  admin complete <id> | admin cancel <id>
  admin dashboard
  quit
`)
}

func (a *app) register(ctx context.Context, args []string) {
	if len(args) != 3 {
		fmt.Println("usage: register <user> <email> <password>")
		return
	}
	auth, err := a.gateway.Register(ctx, domain.RegisterRequest{Username: args[0], Email: args[1], Password: args[2]})
	if err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to register."))
		return
	}
	if err := a.sessions.SignIn(auth); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("welcome, %s (%s)\n", auth.Username, auth.Role)
}

func (a *app) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: login <user-or-email> <password>")
		return
	}
	auth, err := a.gateway.Login(ctx, domain.LoginRequest{UsernameOrEmail: args[0], Password: args[1]})
	if err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to sign in."))
		return
	}
	if err := a.sessions.SignIn(auth); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("welcome back, %s (%s)\n", auth.Username, auth.Role)
}

func (a *app) products(ctx context.Context, query string) {
	s, ok := a.guard(domain.RoleBuyer)
	if !ok {
		return
	}
	if err := a.shop.Load(ctx, s.Token); err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to load products."))
		return
	}
	for _, p := range a.shop.Search(query) {
		marker := " "
		if a.watch.Contains(p.ID) {
			marker = "*"
		}
		fmt.Printf("%s %4d  %-40s %8.2f\n", marker, p.ID, p.Description, p.RetailPrice)
	}
}

func (a *app) toggleWatch(ctx context.Context, args []string) {
	s, ok := a.guard(domain.RoleBuyer)
	if !ok {
		return
	}
	id, err := argID(args)
	if err != nil {
		fmt.Println("usage: watch <product-id>")
		return
	}
	watched, err := a.watch.Toggle(ctx, s.Token, id)
	if err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to update the watchlist."))
		return
	}
	if watched {
		fmt.Printf("product %d added to watchlist\n", id)
	} else {
		fmt.Printf("product %d removed from watchlist\n", id)
	}
}

func (a *app) watchlist(ctx context.Context) {
	s, ok := a.guard(domain.RoleBuyer)
	if !ok {
		return
	}
	if err := a.watch.Refresh(ctx, s.Token); err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to load the watchlist."))
		return
	}
	for _, p := range a.watch.Products() {
		fmt.Printf("%4d  %-40s %8.2f\n", p.ID, p.Description, p.RetailPrice)
	}
}

func (a *app) cartCmd(ctx context.Context, args []string) {
	s, ok := a.guard(domain.RoleBuyer)
	if !ok {
		return
	}
	if len(args) == 0 {
		for _, item := range a.cart.Items() {
			fmt.Printf("%4d  %-40s %3d x %8.2f = %8.2f\n",
				item.ProductID, item.Description, item.Quantity, item.UnitPrice, item.Subtotal())
		}
		fmt.Printf("total: %.2f\n", a.cart.Total())
		return
	}
	switch args[0] {
	case "add":
		id, err := argID(args[1:])
		if err != nil {
			fmt.Println("usage: cart add <product-id> [qty]")
			return
		}
		qty := 1
		if len(args) > 2 {
			qty, _ = strconv.Atoi(args[2])
		}
		product, err := a.shop.Product(ctx, s.Token, id)
		if err != nil {
			fmt.Println(domain.UserMessage(err, "Unable to load the product."))
			return
		}
		a.cart.Add(product, qty)
	case "qty":
		if len(args) != 3 {
			fmt.Println("usage: cart qty <product-id> <quantity>")
			return
		}
		id, _ := strconv.Atoi(args[1])
		qty, _ := strconv.Atoi(args[2])
		a.cart.UpdateQuantity(id, qty)
	case "rm":
		id, err := argID(args[1:])
		if err != nil {
			fmt.Println("usage: cart rm <product-id>")
			return
		}
		a.cart.Remove(id)
	case "clear":
		a.cart.Clear()
	default:
		fmt.Println("usage: cart [add <id> [qty] | qty <id> <n> | rm <id> | clear]")
	}
}

func (a *app) checkout(ctx context.Context) {
	s, ok := a.guard(domain.RoleBuyer)
	if !ok {
		return
	}
	order, err := a.cart.PlaceOrder(ctx, s.Token)
	if err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to place the order."))
		return
	}
	fmt.Printf("order %d placed (%s)\n", order.ID, order.Status)
}

func (a *app) buyerOrders(ctx context.Context) {
	s, ok := a.guard(domain.RoleBuyer)
	if !ok {
		return
	}
	if err := a.orders.Load(ctx, s.Token); err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to load orders."))
		return
	}
	for _, o := range a.orders.Orders() {
		fmt.Printf("%4d  %s  %s\n", o.ID, o.PlacedAt.Format("2006-01-02 15:04"), o.Status)
	}
}

func (a *app) buyerOrder(ctx context.Context, args []string) {
	s, ok := a.guard(domain.RoleBuyer)
	if !ok {
		return
	}
	id, err := argID(args)
	if err != nil {
		fmt.Println("usage: order <order-id>")
		return
	}
	order, err := a.orders.Detail(ctx, s.Token, id)
	if err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to load the order."))
		return
	}
	fmt.Printf("order %d  %s  %s\n", order.ID, order.PlacedAt.Format("2006-01-02 15:04"), order.Status)
	for _, item := range order.Items {
		fmt.Printf("  %4d  %-40s %3d x %8.2f\n", item.ProductID, item.Description, item.Quantity, item.UnitRetailPrice)
	}
}

func (a *app) cancelOrder(ctx context.Context, args []string) {
	s, ok := a.guard(domain.RoleBuyer)
	if !ok {
		return
	}
	id, err := argID(args)
	if err != nil {
		fmt.Println("usage: cancel <order-id>")
		return
	}
	status, err := a.orders.Cancel(ctx, s.Token, id)
	if err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to cancel the order."))
		return
	}
	fmt.Printf("order %d is now %s\n", id, status)
}

func (a *app) showInsights(ctx context.Context) {
	s, ok := a.guard(domain.RoleBuyer)
	if !ok {
		return
	}
	if err := a.insights.Load(ctx, s.Token); err != nil {
		fmt.Println(domain.UserMessage(err, "Unable to load purchase insights."))
		return
	}
	data := a.insights.Snapshot()
	fmt.Println("most purchased:")
	for _, item := range data.Frequent {
		fmt.Printf("  %4d  %-40s x%d\n", item.ProductID, item.Description, item.TotalQuantity)
	}
	fmt.Println("recently purchased:")
	for _, item := range data.Recent {
		fmt.Printf("  %4d  %-40s %s\n", item.ProductID, item.Description, item.LastPurchasedAt.Format("2006-01-02 15:04"))
	}
}

func (a *app) adminCmd(ctx context.Context, args []string) {
	s, ok := a.guard(domain.RoleAdmin)
	if !ok {
		return
	}
	if len(args) == 0 {
		fmt.Println("usage: admin <products|create|orders|order|complete|cancel|dashboard> ...")
		return
	}
	switch args[0] {
	case "products":
		if err := a.catalog.Load(ctx, s.Token); err != nil {
			fmt.Println(domain.UserMessage(err, "Unable to load products."))
			return
		}
		for _, p := range a.catalog.Products() {
			fmt.Printf("%4d  %-40s buy %8.2f  sell %8.2f  stock %4d\n",
				p.ID, p.Description, p.WholesalePrice, p.RetailPrice, p.StockQuantity)
		}
	case "create":
		if len(args) != 5 {
			fmt.Println("usage: admin create <desc> <wholesale> <retail> <stock>")
			return
		}
		wholesale, _ := strconv.ParseFloat(args[2], 64)
		retail, _ := strconv.ParseFloat(args[3], 64)
		stock, _ := strconv.Atoi(args[4])
		product, err := a.catalog.Create(ctx, s.Token, domain.AdminProductCreate{
			Description:    args[1],
			WholesalePrice: wholesale,
			RetailPrice:    retail,
			StockQuantity:  stock,
		})
		if err != nil {
			fmt.Println(domain.UserMessage(err, "Unable to create the product."))
			return
		}
		fmt.Printf("created product %d\n", product.ID)
	case "orders":
		err := a.adminList.Load(ctx, s.Token)
		for _, o := range a.adminList.Orders() {
			fmt.Printf("%4d  %s  %-10s %s\n", o.ID, o.PlacedAt.Format("2006-01-02 15:04"), o.Status, o.BuyerUsername)
		}
		if err != nil {
			fmt.Println(domain.UserMessage(err, "Unable to load every page."))
		}
	case "order":
		id, err := argID(args[1:])
		if err != nil {
			fmt.Println("usage: admin order <order-id>")
			return
		}
		order, err := a.adminList.Detail(ctx, s.Token, id)
		if err != nil {
			fmt.Println(domain.UserMessage(err, "Unable to load the order."))
			return
		}
		fmt.Printf("order %d  %s  %s  buyer %s\n", order.ID, order.PlacedAt.Format("2006-01-02 15:04"), order.Status, order.BuyerUsername)
		for _, item := range order.Items {
			fmt.Printf("  %4d  %-40s %3d x %8.2f (cost %8.2f)\n",
				item.ProductID, item.Description, item.Quantity, item.UnitRetailPrice, item.UnitWholesalePrice)
		}
	case "complete", "cancel":
		id, err := argID(args[1:])
		if err != nil {
			fmt.Printf("usage: admin %s <order-id>\n", args[0])
			return
		}
		var status domain.OrderStatus
		if args[0] == "complete" {
			status, err = a.adminList.Complete(ctx, s.Token, id)
		} else {
			status, err = a.adminList.Cancel(ctx, s.Token, id)
		}
		if err != nil {
			fmt.Println(domain.UserMessage(err, "Unable to update the order."))
			return
		}
		fmt.Printf("order %d is now %s\n", id, status)
	case "dashboard":
		if err := a.dashboard.Load(ctx, s.Token); err != nil {
			fmt.Println(domain.UserMessage(err, "Unable to load the dashboard."))
		}
		data := a.dashboard.Snapshot()
		fmt.Printf("open orders: %d, products: %d\n", len(data.Orders), len(data.Products))
		if data.Profit != nil {
			fmt.Printf("top profit: %s (%.2f)\n", data.Profit.Description, data.Profit.TotalProfit)
		}
		for _, item := range data.Popular {
			fmt.Printf("popular: %-40s x%d\n", item.Description, item.TotalQuantity)
		}
		if data.TotalSold != nil {
			fmt.Printf("total items sold: %d\n", data.TotalSold.TotalItems)
		}
	default:
		fmt.Println("usage: admin <products|create|orders|order|complete|cancel|dashboard> ...")
	}
}

func argID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("bad id %q", args[0])
	}
	return id, nil
}
