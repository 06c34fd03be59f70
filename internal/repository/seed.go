package repository

import (
	"context"

	"SweetOrderAPI/internal/model"

	"go.uber.org/zap"
)

// Seed loads the demonstration fixtures into the catalog and identity stores.
// Restarting the process resets all data back to these rows.
func Seed(ctx context.Context, logger *zap.Logger, users *UserRepository, products *ProductRepository, menus *MenuRepository) error {
	sampleUsers := []model.User{
		{
			Username: "cliente1",
			Password: "password123",
			Name:     "Maria Silva",
			Email:    "maria@example.com",
			Whatsapp: "11999998888",
		},
		{
			Username: "cliente2",
			Password: "password123",
			Name:     "João Santos",
			Email:    "joao@example.com",
			Whatsapp: "11977776666",
		},
	}
	for i := range sampleUsers {
		if _, err := users.Create(ctx, &sampleUsers[i]); err != nil {
			return err
		}
	}

	sampleProducts := []model.Product{
		{
			Name:           "Bolo de Chocolate",
			Description:    "Delicioso bolo de chocolate com cobertura especial e decoração com morangos frescos. Ideal para aniversários e comemorações especiais.",
			Price:          6500, // R$ 65,00
			Category:       "Bolos",
			ImageURL:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			HasSizeOptions: true,
			SizeOptions: []model.SizeOption{
				{Name: "Pequeno", Description: "Serve 10", Price: 6500},
				{Name: "Médio", Description: "Serve 15", Price: 8500},
				{Name: "Grande", Description: "Serve 25", Price: 12000},
			},
		},
		{
			Name:           "Bolo Red Velvet",
			Description:    "Delicado bolo vermelho com cobertura de cream cheese",
			Price:          7200, // R$ 72,00
			Category:       "Bolos",
			ImageURL:       "https://images.unsplash.com/photo-1542826438-bd32f43d626f?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			HasSizeOptions: true,
			SizeOptions: []model.SizeOption{
				{Name: "Pequeno", Description: "Serve 10", Price: 7200},
				{Name: "Médio", Description: "Serve 15", Price: 9500},
				{Name: "Grande", Description: "Serve 25", Price: 13500},
			},
		},
		{
			Name:        "Cupcakes Diversos",
			Description: "Kit com 6 cupcakes de sabores variados",
			Price:       4800, // R$ 48,00
			Category:    "Doces",
			ImageURL:    "https://images.unsplash.com/photo-1587314168485-3236d6710814?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		{
			Name:        "Brigadeiros Gourmet",
			Description: "Caixa com 10 unidades de sabores variados",
			Price:       3500, // R$ 35,00
			Category:    "Doces",
			ImageURL:    "https://images.unsplash.com/photo-1603532648955-039310d9ed75?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		{
			Name:        "Torta de Limão",
			Description: "Clássica torta de limão com merengue",
			Price:       5500, // R$ 55,00
			Category:    "Tortas",
			ImageURL:    "https://images.unsplash.com/photo-1505253758473-96b7015fcd40?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		{
			Name:        "Coxinhas",
			Description: "Bandeja com 20 mini coxinhas de frango",
			Price:       4500, // R$ 45,00
			Category:    "Salgados",
			ImageURL:    "https://images.unsplash.com/photo-1519676867240-f03562e64548?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
	}
	for i := range sampleProducts {
		if _, err := products.Create(ctx, &sampleProducts[i]); err != nil {
			return err
		}
	}

	sampleMenus := []struct {
		menu       model.Menu
		productIDs []int64
	}{
		{
			menu: model.Menu{
				Name:        "Festas e Aniversários",
				Description: "Bolos, doces e salgados para sua celebração",
				ImageURL:    "https://images.unsplash.com/photo-1535141192574-5d4897c12636?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			},
			productIDs: []int64{1, 2, 3, 4},
		},
		{
			menu: model.Menu{
				Name:        "Dia a Dia",
				Description: "Salgados e doces para o seu cotidiano",
				ImageURL:    "https://images.unsplash.com/photo-1550617931-e17a7b70dce2?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			},
			productIDs: []int64{5, 6},
		},
		{
			menu: model.Menu{
				Name:        "Ocasiões Especiais",
				Description: "Delícias premium para momentos marcantes",
				ImageURL:    "https://images.unsplash.com/photo-1563729784474-d77dbb933a9e?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			},
			productIDs: []int64{1, 2, 5},
		},
	}
	for i := range sampleMenus {
		created, err := menus.Create(ctx, &sampleMenus[i].menu)
		if err != nil {
			return err
		}
		for _, pid := range sampleMenus[i].productIDs {
			if _, err := menus.AddProduct(ctx, created.ID, pid); err != nil {
				return err
			}
		}
	}

	logger.Info("seed data loaded",
		zap.Int("users", len(sampleUsers)),
		zap.Int("products", len(sampleProducts)),
		zap.Int("menus", len(sampleMenus)),
	)
	return nil
}
