package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/articod/articod/internal/catalogsrv/auth"
	"github.com/articod/articod/internal/catalogsrv/catcommon"
	"github.com/articod/articod/internal/catalogsrv/config"
)

var createFile string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a catalog object from a YAML resource file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, body, err := loadResource(createFile)
		if err != nil {
			return err
		}
		rsp, err := newClient().do(http.MethodPost, path, body)
		if err != nil {
			return err
		}
		return printJSON(rsp)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <kind> [id]",
	Short: "Get one catalog object or list a collection",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := pathForKind(args[0])
		if err != nil {
			return err
		}
		if len(args) == 2 {
			path += "/" + args[1]
		}
		rsp, err := newClient().do(http.MethodGet, path, nil)
		if err != nil {
			return err
		}
		return printJSON(rsp)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <kind> <id>",
	Short: "Delete a catalog object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := pathForKind(args[0])
		if err != nil {
			return err
		}
		if _, err := newClient().do(http.MethodDelete, path+"/"+args[1], nil); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

var generateFile string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Mint a generated entry from a YAML resource file",
	Long: `Reads a YAML file with kind "GeneratedEntry" and a spec holding productId,
optional variant1Id/variant2Id and a values map, and asks the server to
mint a new generated code for that combination.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, body, err := loadResource(generateFile)
		if err != nil {
			return err
		}
		if path != "/generated-entries" {
			return fmt.Errorf("generate expects a GeneratedEntry resource")
		}
		rsp, err := newClient().do(http.MethodPost, path, body)
		if err != nil {
			return err
		}
		return printJSON(rsp)
	},
}

var (
	tokenSubject string
	tokenRole    string
	tokenConfig  string
)

// tokenCmd mints a token locally with the server's signing key; it is meant
// for operators with access to the server config.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token using the server's signing key",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadConfig(tokenConfig); err != nil {
			return err
		}
		token, err := auth.CreateToken(tokenSubject, catcommon.Role(tokenRole))
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "YAML resource file")
	_ = createCmd.MarkFlagRequired("file")

	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "YAML resource file")
	_ = generateCmd.MarkFlagRequired("file")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "actor identity to embed in the token")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "viewer", "role to embed: viewer, editor or admin")
	tokenCmd.Flags().StringVar(&tokenConfig, "config", "", "path to the server's TOML config file")
	_ = tokenCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(createCmd, getCmd, deleteCmd, generateCmd, tokenCmd)
}
