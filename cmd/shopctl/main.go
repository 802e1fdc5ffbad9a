package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopapp/shopping-client/config"
	"github.com/shopapp/shopping-client/internal/auth"
	authClientPkg "github.com/shopapp/shopping-client/internal/auth/client"
	authUCPkg "github.com/shopapp/shopping-client/internal/auth/usecase"
	catClientPkg "github.com/shopapp/shopping-client/internal/catalog/client"
	cartClientPkg "github.com/shopapp/shopping-client/internal/cart/client"
	"github.com/shopapp/shopping-client/internal/httpx"
	"github.com/shopapp/shopping-client/internal/logger"
	"github.com/shopapp/shopping-client/internal/session"
	"github.com/shopapp/shopping-client/internal/shopper"
	shopUCPkg "github.com/shopapp/shopping-client/internal/shopper/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.AppEnv == "dev" || cfg.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Session store (persisted across runs)
	sessions := session.NewStore(cfg.Session.FilePath, appLogger)

	// 4. Remote clients
	authHTTP := httpx.New(cfg.Auth.BaseURL, cfg.Auth.Timeout, sessions, appLogger)
	shopHTTP := httpx.New(cfg.Shopping.BaseURL, cfg.Shopping.Timeout, sessions, appLogger)

	authClient := authClientPkg.NewHTTPClient(authHTTP, appLogger)
	catalogClient := catClientPkg.NewHTTPClient(shopHTTP, appLogger)
	cartClient := cartClientPkg.NewHTTPClient(shopHTTP, appLogger)

	// 5. Use cases
	notifier := &shopper.LatestNotifier{}
	authUC := authUCPkg.NewAuthUseCase(authClient, sessions, appLogger)
	shopUC := shopUCPkg.NewShopperUseCase(catalogClient, cartClient, notifier, appLogger)

	appLogger.Info("shopctl starting",
		zap.String("auth_url", cfg.Auth.BaseURL),
		zap.String("shopping_url", cfg.Shopping.BaseURL))

	runREPL(authUC, shopUC, notifier)
}

func runREPL(authUC auth.UseCase, shopUC shopper.UseCase, notifier *shopper.LatestNotifier) {
	ctx := context.Background()

	if sess, ok := authUC.CurrentSession(); ok {
		fmt.Printf("Resuming session for user %s\n", sess.UserID)
		_ = shopUC.Activate(ctx)
	} else {
		fmt.Println("Not logged in. Use: login <username> <password>")
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			args := strings.Fields(line)
			if args[0] == "quit" || args[0] == "exit" {
				return
			}
			dispatch(ctx, args, authUC, shopUC)
			if msg, fresh := notifier.Last(); fresh {
				fmt.Println("! " + msg)
			}
		}
		fmt.Print("> ")
	}
}

func dispatch(ctx context.Context, args []string, authUC auth.UseCase, shopUC shopper.UseCase) {
	switch args[0] {
	case "help":
		printHelp()
	case "login":
		if len(args) != 3 {
			fmt.Println("usage: login <username> <password>")
			return
		}
		sess, err := authUC.Login(ctx, args[1], args[2])
		if err != nil {
			fmt.Println("Login failed:", err)
			return
		}
		fmt.Printf("Logged in as user %s\n", sess.UserID)
		_ = shopUC.Activate(ctx)
	case "signup":
		if len(args) != 4 {
			fmt.Println("usage: signup <username> <email> <password>")
			return
		}
		if err := authUC.Signup(ctx, args[1], args[3], args[2]); err != nil {
			fmt.Println("Signup failed:", err)
			return
		}
		fmt.Println("Signup successful! Please login.")
	case "logout":
		// Local session clears regardless of the remote outcome.
		if err := authUC.Logout(ctx); err != nil {
			fmt.Println("Remote logout failed; local session cleared.")
			return
		}
		fmt.Println("Logged out.")
	case "products":
		printProducts(shopUC.Snapshot())
	case "cart":
		printCart(shopUC.Snapshot())
	case "sort":
		if len(args) != 2 {
			fmt.Println("usage: sort price|name|stock")
			return
		}
		shopUC.Sort(shopper.SortKey(args[1]))
		printProducts(shopUC.Snapshot())
	case "select":
		id, ok := parseID(args, 2)
		if !ok {
			fmt.Println("usage: select <productId>")
			return
		}
		if err := shopUC.SelectProduct(id); err != nil {
			return
		}
		printSelection(shopUC.Snapshot())
	case "qty":
		n, ok := parseID(args, 2)
		if !ok {
			fmt.Println("usage: qty <quantity>")
			return
		}
		if err := shopUC.SetQuantity(int(n)); err != nil {
			fmt.Println("Invalid quantity.")
		}
	case "add":
		if shopUC.Add(ctx) == nil {
			fmt.Println("Added to cart.")
			printCart(shopUC.Snapshot())
		}
	case "edit":
		if len(args) != 3 {
			fmt.Println("usage: edit <itemId> <quantity>")
			return
		}
		itemID, err1 := strconv.ParseInt(args[1], 10, 64)
		qty, err2 := strconv.Atoi(args[2])
		if err1 != nil || err2 != nil {
			fmt.Println("usage: edit <itemId> <quantity>")
			return
		}
		if err := shopUC.StartEdit(itemID); err != nil {
			fmt.Println("Cart item not found.")
			return
		}
		view := shopUC.Snapshot()
		if view.Editing != nil {
			stock, known := view.Stocks.Lookup(view.Editing.ProductID)
			b := shopper.EditBounds(stock, known, view.Editing.Quantity)
			fmt.Printf("Allowed quantity: %d..%d\n", b.Min, b.Max)
		}
		if shopUC.Update(ctx, qty) == nil {
			fmt.Println("Updated.")
			printCart(shopUC.Snapshot())
		}
	case "remove":
		itemID, ok := parseID(args, 2)
		if !ok {
			fmt.Println("usage: remove <itemId>")
			return
		}
		if shopUC.Remove(ctx, itemID) == nil {
			fmt.Println("Removed.")
			printCart(shopUC.Snapshot())
		}
	case "reset":
		_ = shopUC.Reset(ctx)
	case "refresh":
		_ = shopUC.Refresh(ctx)
		printProducts(shopUC.Snapshot())
	default:
		fmt.Println("Unknown command; try: help")
	}
}

func parseID(args []string, wantLen int) (int64, bool) {
	if len(args) != wantLen {
		return 0, false
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func printHelp() {
	fmt.Println(`Commands:
  login <username> <password>     authenticate and load the shop
  signup <username> <email> <pw>  create an account
  logout                          end the session
  products                        list products (current sort order)
  sort price|name|stock           sort key; same key toggles direction
  select <productId>              highlight a product
  qty <n>                         set quantity for the selection
  add                             add the selection to the cart
  cart                            show the cart
  edit <itemId> <quantity>        change a cart line's quantity
  remove <itemId>                 remove a cart line
  reset                           reset the environment (admin)
  refresh                         re-fetch cart and stock
  quit`)
}

func printProducts(view shopper.View) {
	dir := "asc"
	if view.Sort.Dir == shopper.Descending {
		dir = "desc"
	}
	fmt.Printf("Products (sorted by %s %s):\n", view.Sort.Key, dir)
	for _, p := range view.Products {
		stockLabel := "stock unknown"
		if stock, known := view.Stocks.Lookup(p.ID); known {
			if stock > 0 {
				stockLabel = fmt.Sprintf("in stock: %d", stock)
			} else {
				stockLabel = "out of stock"
			}
		}
		fmt.Printf("  [%d] %s - $%.2f (%s)\n      %s\n", p.ID, p.Name, p.Price, stockLabel, p.Description)
	}
}

func printSelection(view shopper.View) {
	if view.Selected == nil {
		return
	}
	stock, known := view.Stocks.Lookup(view.Selected.ID)
	b := shopper.AddBounds(stock, known)
	fmt.Printf("Selected: %s - $%.2f (quantity %d..%d)\n",
		view.Selected.Name, view.Selected.Price, b.Min, b.Max)
}

func printCart(view shopper.View) {
	if len(view.Cart.Items) == 0 {
		fmt.Println("Your cart is empty")
		return
	}
	fmt.Println("Cart:")
	for _, it := range view.Cart.Items {
		name := fmt.Sprintf("Product %d", it.ProductID)
		for _, p := range view.Products {
			if p.ID == it.ProductID {
				name = p.Name
				break
			}
		}
		fmt.Printf("  [%d] %s: %d x $%.2f\n", it.ID, name, it.Quantity, it.Price)
	}
	// Total comes from the server as-is; the client never recomputes it.
	fmt.Printf("Total Amount: $%.2f\n", view.Cart.Total)
}
