package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "splitbook-cli",
		Short: "Splitbook CLI tool",
		Long:  `A command line interface for interacting with the Splitbook API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Splitbook API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountsCmd())
	rootCmd.AddCommand(txnCmd())
	rootCmd.AddCommand(sessionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodGet, "/api/v1/accounts/", nil))
		},
	})

	var currency string
	create := &cobra.Command{
		Use:   "create [name]",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodPost, "/api/v1/accounts/", map[string]string{
				"name":     args[0],
				"currency": currency,
			}))
		},
	}
	create.Flags().StringVar(&currency, "currency", "USD", "Account currency")
	cmd.AddCommand(create)

	return cmd
}

func txnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txn",
		Short: "Transaction operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Run: func(cmd *cobra.Command, args []string) {
			listTransactions()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [id]",
		Short: "Show a transaction with its splits",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodGet, "/api/v1/transactions/"+args[0], nil))
		},
	})

	var date, description, payee string
	create := &cobra.Command{
		Use:   "create [from] [to] [amount]",
		Short: "Create a simple two-split transaction",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodPost, "/api/v1/transactions/", map[string]string{
				"date":        date,
				"description": description,
				"payee":       payee,
				"from":        args[0],
				"to":          args[1],
				"amount":      args[2],
			}))
		},
	}
	create.Flags().StringVar(&date, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	create.Flags().StringVar(&description, "description", "", "Description")
	create.Flags().StringVar(&payee, "payee", "", "Payee")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			request(http.MethodDelete, "/api/v1/transactions/"+args[0], nil)
			fmt.Println("deleted")
		},
	})

	return cmd
}

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Edit session operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "open [id]",
		Short: "Open an edit session over a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodPost, "/api/v1/transactions/"+args[0]+"/session/", nil))
		},
	})

	var date string
	draft := &cobra.Command{
		Use:   "new",
		Short: "Open a session over a brand-new transaction",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodPost, "/api/v1/sessions", map[string]string{"date": date}))
		},
	}
	draft.Flags().StringVar(&date, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	cmd.AddCommand(draft)

	cmd.AddCommand(&cobra.Command{
		Use:   "show [id]",
		Short: "Show session state",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodGet, "/api/v1/transactions/"+args[0]+"/session/", nil))
		},
	})

	var debit, credit, account, memo string
	editSplit := &cobra.Command{
		Use:   "edit-split [id] [index]",
		Short: "Edit a split; the engine rebalances the rest",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]string{}
			if cmd.Flags().Changed("debit") {
				body["debit"] = debit
			}
			if cmd.Flags().Changed("credit") {
				body["credit"] = credit
			}
			if cmd.Flags().Changed("account") {
				body["account"] = account
			}
			if cmd.Flags().Changed("memo") {
				body["memo"] = memo
			}
			printJSON(request(http.MethodPut, "/api/v1/transactions/"+args[0]+"/session/splits/"+args[1], body))
		},
	}
	editSplit.Flags().StringVar(&debit, "debit", "", "Debit amount")
	editSplit.Flags().StringVar(&credit, "credit", "", "Credit amount")
	editSplit.Flags().StringVar(&account, "account", "", "Account name")
	editSplit.Flags().StringVar(&memo, "memo", "", "Memo")
	cmd.AddCommand(editSplit)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-amount [id] [amount]",
		Short: "Set the transaction's total amount",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodPut, "/api/v1/transactions/"+args[0]+"/session/amount", map[string]string{
				"amount": args[1],
			}))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add-split [id]",
		Short: "Append a split to the transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodPost, "/api/v1/transactions/"+args[0]+"/session/splits", nil))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove-split [id] [index]",
		Short: "Remove a split from the transaction",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodDelete, "/api/v1/transactions/"+args[0]+"/session/splits/"+args[1], nil))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "save [id]",
		Short: "Save the session",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(request(http.MethodPost, "/api/v1/transactions/"+args[0]+"/session/save", nil))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "discard [id]",
		Short: "Discard the session",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			request(http.MethodDelete, "/api/v1/transactions/"+args[0]+"/session/", nil)
			fmt.Println("discarded")
		},
	})

	return cmd
}

func listTransactions() {
	raw := request(http.MethodGet, "/api/v1/transactions/", nil)

	var result struct {
		Transactions []struct {
			ID          string `json:"id"`
			Date        string `json:"date"`
			Description string `json:"description"`
			Amount      string `json:"amount"`
			Currency    string `json:"currency"`
		} `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-28s %-12s %-30s %12s %s\n", "ID", "DATE", "DESCRIPTION", "AMOUNT", "CUR")
	for _, txn := range result.Transactions {
		fmt.Printf("%-28s %-12s %-30s %12s %s\n",
			txn.ID, txn.Date, truncate(txn.Description, 30), txn.Amount, txn.Currency)
	}
}

func request(method, path string, body any) []byte {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(data))
		os.Exit(1)
	}

	return data
}

func printJSON(raw []byte) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
