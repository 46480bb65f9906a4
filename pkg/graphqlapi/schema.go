// Package graphqlapi exposes the CRM services as a GraphQL schema. The
// resolvers translate arguments into typed service inputs and wrap
// results in the payload envelopes the mutations declare; all business
// rules live in the services.
package graphqlapi

import (
	"errors"
	"fmt"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/model"
	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/service"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

type resolver struct {
	catalog   service.Catalog
	orders    service.Orders
	inventory service.Inventory
	logger    *zap.Logger
}

func NewSchema(catalog service.Catalog, orders service.Orders, inventory service.Inventory, logger *zap.Logger) (graphql.Schema, error) {
	r := &resolver{catalog: catalog, orders: orders, inventory: inventory, logger: logger}
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(),
		Mutation: r.mutationType(),
	})
}

func (r *resolver) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},
			"customer": &graphql.Field{
				Type: customerType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveCustomer,
			},
			"customers": &graphql.Field{
				Type: graphql.NewList(customerType),
				Args: graphql.FieldConfigArgument{
					"name":         &graphql.ArgumentConfig{Type: graphql.String},
					"email":        &graphql.ArgumentConfig{Type: graphql.String},
					"phonePattern": &graphql.ArgumentConfig{Type: graphql.String},
					"createdAtGte": &graphql.ArgumentConfig{Type: graphql.DateTime},
					"createdAtLte": &graphql.ArgumentConfig{Type: graphql.DateTime},
					"orderBy":      &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: r.resolveCustomers,
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveProduct,
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.String},
					"priceGte": &graphql.ArgumentConfig{Type: graphql.Float},
					"priceLte": &graphql.ArgumentConfig{Type: graphql.Float},
					"stockGte": &graphql.ArgumentConfig{Type: graphql.Int},
					"stockLte": &graphql.ArgumentConfig{Type: graphql.Int},
					"lowStock": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"orderBy":  &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: r.resolveProducts,
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveOrder,
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"customerName":   &graphql.ArgumentConfig{Type: graphql.String},
					"productName":    &graphql.ArgumentConfig{Type: graphql.String},
					"productId":      &graphql.ArgumentConfig{Type: graphql.ID},
					"totalAmountGte": &graphql.ArgumentConfig{Type: graphql.Float},
					"totalAmountLte": &graphql.ArgumentConfig{Type: graphql.Float},
					"orderDateGte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
					"orderDateLte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
					"orderBy":        &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: r.resolveOrders,
			},
			"crmReport": &graphql.Field{
				Type: reportType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					report, err := r.orders.GenerateReport()
					if err != nil {
						return nil, err
					}
					return report, nil
				},
			},
		},
	})
}

func (r *resolver) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: createCustomerPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(customerInputType)},
				},
				Resolve: r.createCustomer,
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: bulkCreateCustomersPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerInputType)))},
				},
				Resolve: r.bulkCreateCustomers,
			},
			"deleteCustomer": &graphql.Field{
				Type: deleteCustomerPayload,
				Args: graphql.FieldConfigArgument{
					"customerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteCustomer,
			},
			"createProduct": &graphql.Field{
				Type: createProductPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInputType)},
				},
				Resolve: r.createProduct,
			},
			"createOrder": &graphql.Field{
				Type: createOrderPayload,
				Args: graphql.FieldConfigArgument{
					"customerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"productIds": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
				},
				Resolve: r.createOrder,
			},
			"updateLowStockProducts": &graphql.Field{
				Type: updateLowStockPayload,
				Args: graphql.FieldConfigArgument{
					"threshold": &graphql.ArgumentConfig{Type: graphql.Int},
					"increment": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.updateLowStockProducts,
			},
		},
	})
}

func (r *resolver) resolveCustomer(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	customer, err := r.catalog.GetCustomer(id)
	if errors.Is(err, model.ErrCustomerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *resolver) resolveCustomers(p graphql.ResolveParams) (interface{}, error) {
	filter := model.CustomerFilter{
		NameContains:  stringArg(p.Args, "name"),
		EmailContains: stringArg(p.Args, "email"),
		PhonePrefix:   stringArg(p.Args, "phonePattern"),
		CreatedAtGte:  timeArg(p.Args, "createdAtGte"),
		CreatedAtLte:  timeArg(p.Args, "createdAtLte"),
		OrderBy:       orderByArg(p.Args, "orderBy"),
	}
	customers, err := r.catalog.ListCustomers(filter)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *resolver) resolveProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	product, err := r.catalog.GetProduct(id)
	if errors.Is(err, model.ErrProductNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *resolver) resolveProducts(p graphql.ResolveParams) (interface{}, error) {
	filter := model.ProductFilter{
		NameContains: stringArg(p.Args, "name"),
		PriceGte:     decimalArg(p.Args, "priceGte"),
		PriceLte:     decimalArg(p.Args, "priceLte"),
		StockGte:     intArg(p.Args, "stockGte"),
		StockLte:     intArg(p.Args, "stockLte"),
		LowStockOnly: boolArg(p.Args, "lowStock"),
		OrderBy:      orderByArg(p.Args, "orderBy"),
	}
	products, err := r.catalog.ListProducts(filter)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *resolver) resolveOrder(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	order, err := r.orders.GetOrder(id)
	if errors.Is(err, model.ErrOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *resolver) resolveOrders(p graphql.ResolveParams) (interface{}, error) {
	filter := model.OrderFilter{
		CustomerNameContains: stringArg(p.Args, "customerName"),
		ProductNameContains:  stringArg(p.Args, "productName"),
		ProductID:            optionalIDArg(p.Args, "productId"),
		TotalAmountGte:       decimalArg(p.Args, "totalAmountGte"),
		TotalAmountLte:       decimalArg(p.Args, "totalAmountLte"),
		OrderDateGte:         timeArg(p.Args, "orderDateGte"),
		OrderDateLte:         timeArg(p.Args, "orderDateLte"),
		OrderBy:              orderByArg(p.Args, "orderBy"),
	}
	orders, err := r.orders.ListOrders(filter)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *resolver) createCustomer(p graphql.ResolveParams) (interface{}, error) {
	input, err := customerInputFrom(p.Args["input"])
	if err != nil {
		return nil, err
	}
	customer, err := r.catalog.CreateCustomer(input)
	if err != nil {
		return map[string]interface{}{"customer": nil, "message": err.Error()}, nil
	}
	return map[string]interface{}{
		"customer": customer,
		"message":  fmt.Sprintf("Customer %s created successfully.", customer.Name),
	}, nil
}

func (r *resolver) bulkCreateCustomers(p graphql.ResolveParams) (interface{}, error) {
	raw, ok := p.Args["input"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("argument %q must be a list of customer inputs", "input")
	}
	inputs := make([]model.CustomerInput, 0, len(raw))
	for _, value := range raw {
		input, err := customerInputFrom(value)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}

	customers, failures := r.catalog.BulkCreateCustomers(inputs)
	return map[string]interface{}{"customers": customers, "errors": failures}, nil
}

func (r *resolver) deleteCustomer(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p.Args, "customerId")
	if err != nil {
		return nil, err
	}
	if err := r.catalog.DeleteCustomer(id); err != nil {
		if errors.Is(err, model.ErrCustomerNotFound) {
			return map[string]interface{}{
				"success": false,
				"message": fmt.Sprintf("Customer with ID %d does not exist.", id),
			}, nil
		}
		return map[string]interface{}{"success": false, "message": err.Error()}, nil
	}
	return map[string]interface{}{"success": true, "message": "Customer deleted successfully."}, nil
}

func (r *resolver) createProduct(p graphql.ResolveParams) (interface{}, error) {
	input, err := productInputFrom(p.Args["input"])
	if err != nil {
		return nil, err
	}
	product, err := r.catalog.CreateProduct(input)
	if err != nil {
		return map[string]interface{}{"product": nil, "message": err.Error()}, nil
	}
	return map[string]interface{}{
		"product": product,
		"message": fmt.Sprintf("Product %s created successfully.", product.Name),
	}, nil
}

func (r *resolver) createOrder(p graphql.ResolveParams) (interface{}, error) {
	customerID, err := idArg(p.Args, "customerId")
	if err != nil {
		return nil, err
	}
	productIDs, err := idListArg(p.Args, "productIds")
	if err != nil {
		return nil, err
	}

	lines := make([]model.OrderLine, 0, len(productIDs))
	for _, id := range productIDs {
		lines = append(lines, model.OrderLine{ProductID: id, Quantity: 1})
	}

	order, err := r.orders.CreateOrder(model.OrderInput{CustomerID: customerID, Lines: lines})
	if err != nil {
		return map[string]interface{}{"order": nil, "message": err.Error()}, nil
	}
	return map[string]interface{}{"order": order, "message": "Order created successfully."}, nil
}

func (r *resolver) updateLowStockProducts(p graphql.ResolveParams) (interface{}, error) {
	threshold := intArgOr(p.Args, "threshold", 0)
	increment := intArgOr(p.Args, "increment", 0)

	products, message, err := r.inventory.ReplenishLowStock(threshold, increment)
	if err != nil {
		r.logger.Error("low-stock replenishment failed", zap.Error(err))
		return map[string]interface{}{"products": products, "success": false, "message": err.Error()}, nil
	}
	return map[string]interface{}{"products": products, "success": true, "message": message}, nil
}

func customerInputFrom(value interface{}) (model.CustomerInput, error) {
	fields, ok := value.(map[string]interface{})
	if !ok {
		return model.CustomerInput{}, fmt.Errorf("customer input must be an object")
	}
	return model.CustomerInput{
		Name:  stringArg(fields, "name"),
		Email: stringArg(fields, "email"),
		Phone: stringArg(fields, "phone"),
	}, nil
}

func productInputFrom(value interface{}) (model.ProductInput, error) {
	fields, ok := value.(map[string]interface{})
	if !ok {
		return model.ProductInput{}, fmt.Errorf("product input must be an object")
	}
	price := decimalArg(fields, "price")
	input := model.ProductInput{
		Name:  stringArg(fields, "name"),
		Stock: intArgOr(fields, "stock", 0),
	}
	if price != nil {
		input.Price = *price
	}
	return input, nil
}
