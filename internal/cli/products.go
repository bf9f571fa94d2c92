package cli

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/products"
)

var (
	errListFailed   = errors.New("Erro ao carregar produtos. Tente novamente.")
	errCreateFailed = errors.New("Erro ao cadastrar produto. Tente novamente.")
)

func newProductsCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"produtos"},
		Short:   "List and create products",
	}
	cmd.AddCommand(newProductsListCmd(g), newProductsCreateCmd(g))
	return cmd
}

func newProductsListCmd(g *globals) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := g.requireToken(); err != nil {
				return err
			}
			format, err := parseFormat(output)
			if err != nil {
				return err
			}

			items, err := g.productService().List(cmd.Context())
			if err != nil {
				g.logger(cmd).Debug("list failed", "err", err)
				return errListFailed
			}
			if len(items) == 0 && format == formatTable {
				fmt.Fprintln(cmd.OutOrStdout(), "Nenhum produto encontrado.")
				return nil
			}
			return writeProducts(cmd.OutOrStdout(), format, items)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")

	return cmd
}

func newProductsCreateCmd(g *globals) *cobra.Command {
	var (
		draft     products.Draft
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product, uploading its image first",
		Example: `  storefront products create --title Caneca --description "Cerâmica 300ml" \
    --category Casa --price 39.90 --image ./caneca.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := g.requireToken()
			if err != nil {
				return err
			}
			for name, v := range map[string]string{
				"title": draft.Title, "description": draft.Description,
				"category": draft.Category, "price": draft.Price,
			} {
				if strings.TrimSpace(v) == "" {
					return fmt.Errorf("--%s is required", name)
				}
			}

			if imagePath != "" {
				f, err := os.Open(imagePath)
				if err != nil {
					return err
				}
				defer f.Close()
				draft.Image = &products.Image{
					Filename:    filepath.Base(imagePath),
					ContentType: imageContentType(imagePath),
					Body:        f,
				}
			}

			created, err := g.productService().Create(cmd.Context(), token, draft)
			if err != nil {
				g.logger(cmd).Debug("create failed", "err", err)
				return errCreateFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Produto cadastrado com sucesso! (id %s)\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Title, "title", "", "Product name")
	cmd.Flags().StringVar(&draft.Description, "description", "", "Product description")
	cmd.Flags().StringVar(&draft.Category, "category", "", "Product category")
	cmd.Flags().StringVar(&draft.Price, "price", "", "Price; unparsable values are sent as 0")
	cmd.Flags().StringVar(&imagePath, "image", "", "Optional image file to upload")

	return cmd
}

func imageContentType(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
