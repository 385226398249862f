// scenarios imprime la clasificación de escenario y los descuentos advisor de
// cada cuenta del directorio (el panel de debug de la página, como
// herramienta de operador).
//
// Uso: go run ./cmd/scenarios [ruta/cuentas.json]
// Sin argumento usa el directorio de demostración embebido.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entitlement"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/entity"
	"github.com/tu-usuario/exitplanner-pricing/internal/infrastructure/memory"
)

func main() {
	companies := memory.SeedCompanies()
	if len(os.Args) > 1 {
		loaded, err := memory.LoadCompaniesFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cargar cuentas: %v\n", err)
			os.Exit(1)
		}
		companies = loaded
	}

	cat := catalog.Default()
	res := entitlement.NewResolver(cat)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CUENTA\tPLAN\tADVISOR\tVINCULADA\tESCENARIO\tDESCUENTOS")
	for _, c := range companies {
		scenario := res.ClassifyScenario(*c)
		linked := "-"
		if c.IsLinked() {
			linked = c.LinkedCompanyID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name, c.BusinessPlan, c.AdvisorTier(), linked,
			scenario.Description(), discountSummary(res, *c))
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir tabla: %v\n", err)
		os.Exit(1)
	}
}

// discountSummary resume los descuentos advisor vigentes de la cuenta sobre
// los planes Business del catálogo.
func discountSummary(res *entitlement.Resolver, c entity.Company) string {
	out := ""
	for _, name := range []string{catalog.PlanBusinessMini, catalog.PlanBusinessMax} {
		offer, err := res.AdvisorDiscount(c, name)
		if err != nil {
			return "error: " + err.Error()
		}
		if offer == nil {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s $%d→$%d (%d%%)", name, offer.OriginalPrice, offer.DiscountedPrice, offer.DiscountPercent)
	}
	if out == "" {
		return "-"
	}
	return out
}
