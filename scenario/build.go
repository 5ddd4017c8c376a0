package scenario

import (
	"fmt"
	"log/slog"
	"time"

	"trade-lab/actor"
	"trade-lab/content"
	"trade-lab/domain"
	"trade-lab/errors"
	"trade-lab/inventory"
	"trade-lab/logistics"
	"trade-lab/runtime"
	"trade-lab/trading"
)

// Built is a ready-to-run simulation.
type Built struct {
	Model        *runtime.Model
	Horizon      time.Time
	ActorsByName map[string]*actor.Actor
	// Banking is the bank facet, when the scenario declares one.
	Banking *trading.Banking
}

// Build wires a validated spec into a model: actors, roles, stock,
// scripted demands and restocking loops.
func Build(log *slog.Logger, spec *Spec) (*Built, error) {
	model := runtime.NewModel(log, spec.Start)

	products := make(map[string]domain.Product, len(spec.Products))
	for _, p := range spec.Products {
		products[p.ID] = domain.Product{
			ID:              p.ID,
			Name:            p.Name,
			Unit:            p.Unit,
			MarketUnitPrice: p.MarketUnitPrice,
		}
	}

	planner := logistics.NewPlanner(spec.Transport.Carrier,
		spec.Transport.Speed, spec.Transport.CostPerDistance, spec.Transport.MaxRange)

	selection, err := buildSelection(spec.Policy)
	if err != nil {
		return nil, err
	}

	// First pass: every actor must exist before roles reference each
	// other by identity.
	byName := make(map[string]*actor.Actor, len(spec.Actors))
	for _, as := range spec.Actors {
		if _, ok := byName[as.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate actor %q", errors.ErrInvalidScenario, as.Name)
		}
		location := domain.Location{Name: as.Name, X: as.Location.X, Y: as.Location.Y}
		byName[as.Name] = model.NewActor(as.Name, location)
	}

	built := &Built{
		Model:        model,
		Horizon:      spec.Start.Add(spec.Duration.Std()),
		ActorsByName: byName,
	}

	var bankID domain.ActorID
	for _, as := range spec.Actors {
		if !as.Bank {
			continue
		}
		if bankID != "" {
			return nil, fmt.Errorf("%w: more than one bank", errors.ErrInvalidScenario)
		}
		banking, err := trading.NewBanking(log, byName[as.Name], receiver(model, spec))
		if err != nil {
			return nil, err
		}
		bankID = byName[as.Name].ID
		built.Banking = banking
	}

	for _, as := range spec.Actors {
		if as.Bank {
			continue
		}
		a := byName[as.Name]
		inv := inventory.New(log, as.Name)

		if as.Sells != nil {
			priceFactor := as.Sells.PriceFactor
			if priceFactor == 0 {
				priceFactor = spec.Defaults.PriceFactor
			}
			for productID, amount := range as.Sells.Stock {
				p, ok := products[productID]
				if !ok {
					return nil, fmt.Errorf("%w: actor %q stocks unknown product %q",
						errors.ErrUnknownProduct, as.Name, productID)
				}
				inv.SetStock(p, amount)
			}
			_, err := trading.NewSelling(log, a, model.IDs(), inv, planner, model, trading.SellingConfig{
				PriceFactor:   priceFactor,
				HandlingTime:  spec.Defaults.HandlingTime.Std(),
				QuoteValidity: spec.Defaults.QuoteValidity.Std(),
				PaymentTerm:   spec.Defaults.PaymentTerm.Std(),
				SendDelay:     spec.Defaults.SendDelay.Std(),
			}, receiver(model, spec))
			if err != nil {
				return nil, err
			}
		}

		if as.Buys != nil {
			purchasing, err := buildPurchasing(log, model, spec, as, a, inv, byName, products, selection)
			if err != nil {
				return nil, err
			}
			if len(as.Buys.Restock) > 0 {
				if err := purchasing.RunRestocking(spec.Defaults.RestockInterval.Std()); err != nil {
					return nil, err
				}
			}
		}

		if as.Buys != nil || as.Sells != nil {
			_, err := trading.NewFinancing(log, a, model.IDs(), trading.FinancingConfig{
				SettleDelay: spec.Defaults.SettleDelay.Std(),
				SendDelay:   spec.Defaults.SendDelay.Std(),
				Bank:        bankID,
			}, receiver(model, spec))
			if err != nil {
				return nil, err
			}
		}
	}

	if err := scheduleDemands(log, model, spec, byName, products); err != nil {
		return nil, err
	}
	return built, nil
}

func buildPurchasing(log *slog.Logger, model *runtime.Model, spec *Spec, as ActorSpec,
	a *actor.Actor, inv *inventory.Inventory, byName map[string]*actor.Actor,
	products map[string]domain.Product, selection trading.SelectionConfig) (*trading.Purchasing, error) {
	suppliers := make([]domain.ActorID, 0, len(as.Buys.Suppliers))
	for _, name := range as.Buys.Suppliers {
		supplier, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: actor %q buys from unknown supplier %q",
				errors.ErrInvalidScenario, as.Name, name)
		}
		suppliers = append(suppliers, supplier.ID)
	}

	restock := make([]trading.RestockRule, 0, len(as.Buys.Restock))
	for _, rs := range as.Buys.Restock {
		p, ok := products[rs.Product]
		if !ok {
			return nil, fmt.Errorf("%w: actor %q restocks unknown product %q",
				errors.ErrUnknownProduct, as.Name, rs.Product)
		}
		restock = append(restock, trading.RestockRule{
			Product:      p,
			ReorderPoint: rs.ReorderPoint,
			TargetStock:  rs.TargetStock,
		})
	}

	purchasing, err := trading.NewPurchasing(log, a, model.IDs(), inv, model, trading.PurchasingConfig{
		Suppliers:        suppliers,
		QuoteDeadline:    spec.Defaults.QuoteDeadline.Std(),
		DeliveryLeadTime: spec.Defaults.DeliveryLeadTime.Std(),
		SendDelay:        spec.Defaults.SendDelay.Std(),
		Selection:        selection,
		Restock:          restock,
	}, receiver(model, spec))
	if err != nil {
		return nil, err
	}

	switch spec.Policy.Waiting {
	case WaitingAll:
		purchasing.UsePolicy(trading.NewWaitForAllQuotes(purchasing))
	case WaitingTimeout:
		purchasing.UsePolicy(trading.NewWaitWithTimeout(purchasing))
	default:
		return nil, fmt.Errorf("%w: unknown waiting policy %q", errors.ErrInvalidScenario, spec.Policy.Waiting)
	}
	return purchasing, nil
}

func scheduleDemands(log *slog.Logger, model *runtime.Model, spec *Spec,
	byName map[string]*actor.Actor, products map[string]domain.Product) error {
	for _, ds := range spec.Demands {
		buyer, ok := byName[ds.Buyer]
		if !ok {
			return fmt.Errorf("%w: demand for unknown buyer %q", errors.ErrInvalidScenario, ds.Buyer)
		}
		p, ok := products[ds.Product]
		if !ok {
			return fmt.Errorf("%w: demand for unknown product %q", errors.ErrUnknownProduct, ds.Product)
		}
		amount := ds.Amount
		lead := spec.Defaults.DeliveryLeadTime.Std()
		model.Scheduler().At(spec.Start.Add(ds.At.Std()), func() {
			now := model.Now()
			demand := content.NewDemand(model.IDs(), now, buyer.ID, buyer.ID, p, amount, now.Add(lead))
			if err := buyer.Send(demand, 0); err != nil {
				log.Warn("scripted demand not sent", "buyer", buyer.Name, "error", err)
			}
		})
	}
	return nil
}

func receiver(model *runtime.Model, spec *Spec) actor.ContentReceiver {
	if spec.Defaults.ReceiverDelay > 0 {
		return actor.DelayedReceiver{Scheduler: model.Scheduler(), Delay: spec.Defaults.ReceiverDelay.Std()}
	}
	return actor.DirectReceiver{}
}

func buildSelection(policy PolicySpec) (trading.SelectionConfig, error) {
	criteria := make([]trading.Criterion, 0, len(policy.Criteria))
	for _, name := range policy.Criteria {
		switch name {
		case "price":
			criteria = append(criteria, trading.CriterionPrice)
		case "delivery":
			criteria = append(criteria, trading.CriterionDeliveryDate)
		case "distance":
			criteria = append(criteria, trading.CriterionDistance)
		default:
			return trading.SelectionConfig{}, fmt.Errorf("%w: unknown criterion %q",
				errors.ErrInvalidScenario, name)
		}
	}
	if len(criteria) == 0 {
		criteria = trading.DefaultCriteria()
	}
	return trading.SelectionConfig{
		MaxPriceMargin:  policy.MaxPriceMargin,
		MinAmountMargin: policy.MinAmountMargin,
		Criteria:        criteria,
	}, nil
}
