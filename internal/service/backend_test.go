package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mmeshcher/deliverus-owner/internal/model"
	"github.com/mmeshcher/deliverus-owner/internal/transport"
)

// fakeDeliverUS эмулирует бэкенд DeliverUS в памяти: адреса с серверным
// инвариантом единственного адреса по умолчанию, заказы с переходами
// статусов и расписания с каскадной отвязкой продуктов.
type fakeDeliverUS struct {
	mu sync.Mutex

	addresses []model.ShippingAddress
	nextAddr  int64

	orders map[int64]*model.Order

	schedules    []model.Schedule
	nextSchedule int64
	products     []model.Product

	analytics model.Analytics

	requests        int
	failAddressList bool
}

func newFakeDeliverUS() *fakeDeliverUS {
	return &fakeDeliverUS{
		nextAddr:     1,
		nextSchedule: 1,
		orders:       make(map[int64]*model.Order),
	}
}

func (b *fakeDeliverUS) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests
}

func (b *fakeDeliverUS) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests++
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *fakeDeliverUS) router() http.Handler {
	r := chi.NewRouter()
	r.Use(b.countRequests)

	r.Route("/shippingaddresses", func(r chi.Router) {
		r.Get("/", b.listAddresses)
		r.Post("/", b.createAddress)
		r.Delete("/{id}", b.deleteAddress)
		r.Patch("/{id}/default", b.setDefaultAddress)
	})

	r.Route("/orders/{id}", func(r chi.Router) {
		r.Get("/", b.getOrder)
		r.Put("/by-owner", b.updateOrderByOwner)
		r.Patch("/confirm", b.advanceOrder(model.OrderStatusPending, model.OrderStatusInProcess))
		r.Patch("/send", b.advanceOrder(model.OrderStatusInProcess, model.OrderStatusSent))
		r.Patch("/deliver", b.advanceOrder(model.OrderStatusSent, model.OrderStatusDelivered))
	})

	r.Route("/restaurants/{rid}", func(r chi.Router) {
		r.Get("/", b.restaurantDetail)
		r.Get("/schedules", b.listSchedules)
		r.Post("/schedules", b.createSchedule)
		r.Delete("/schedules/{sid}", b.deleteSchedule)
		r.Get("/orders", b.restaurantOrders)
		r.Get("/analytics", b.restaurantAnalytics)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFieldErrors(w http.ResponseWriter, errs ...map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
}

func urlID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id
}

func (b *fakeDeliverUS) listAddresses(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failAddressList {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, b.addresses)
}

func (b *fakeDeliverUS) createAddress(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var addr model.ShippingAddress
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if addr.Alias == "" {
		writeFieldErrors(w, map[string]string{"param": "alias", "msg": "Alias is required"})
		return
	}

	addr.ID = b.nextAddr
	b.nextAddr++
	if addr.IsDefault {
		for i := range b.addresses {
			b.addresses[i].IsDefault = false
		}
	}
	b.addresses = append(b.addresses, addr)

	writeJSON(w, http.StatusCreated, addr)
}

func (b *fakeDeliverUS) deleteAddress(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := urlID(r, "id")
	kept := b.addresses[:0]
	for _, addr := range b.addresses {
		if addr.ID != id {
			kept = append(kept, addr)
		}
	}
	b.addresses = kept

	w.WriteHeader(http.StatusNoContent)
}

func (b *fakeDeliverUS) setDefaultAddress(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := urlID(r, "id")
	for i := range b.addresses {
		b.addresses[i].IsDefault = b.addresses[i].ID == id
	}

	w.WriteHeader(http.StatusOK)
}

func (b *fakeDeliverUS) getOrder(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	order, ok := b.orders[urlID(r, "id")]
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (b *fakeDeliverUS) updateOrderByOwner(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	order, ok := b.orders[urlID(r, "id")]
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var upd struct {
		Address string  `json:"address"`
		Price   float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order.Address = upd.Address
	order.Price = upd.Price

	writeJSON(w, http.StatusOK, order)
}

func (b *fakeDeliverUS) advanceOrder(from, to model.OrderStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		order, ok := b.orders[urlID(r, "id")]
		if !ok {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		if order.Status != from {
			writeFieldErrors(w, map[string]string{"param": "status", "msg": "Invalid transition"})
			return
		}

		order.Status = to
		writeJSON(w, http.StatusOK, order)
	}
}

// scheduleWithProducts собирает расписание вместе с актуальными связями.
func (b *fakeDeliverUS) scheduleWithProducts(sch model.Schedule) model.Schedule {
	sch.Products = nil
	for _, p := range b.products {
		if p.ScheduleID != nil && *p.ScheduleID == sch.ID {
			sch.Products = append(sch.Products, p)
		}
	}
	return sch
}

func (b *fakeDeliverUS) listSchedules(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rid := urlID(r, "rid")
	out := make([]model.Schedule, 0)
	for _, sch := range b.schedules {
		if sch.RestaurantID == rid {
			out = append(out, b.scheduleWithProducts(sch))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *fakeDeliverUS) createSchedule(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sch model.Schedule
	if err := json.NewDecoder(r.Body).Decode(&sch); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sch.ID = b.nextSchedule
	b.nextSchedule++
	sch.RestaurantID = urlID(r, "rid")
	b.schedules = append(b.schedules, sch)

	writeJSON(w, http.StatusCreated, sch)
}

func (b *fakeDeliverUS) deleteSchedule(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sid := urlID(r, "sid")

	kept := b.schedules[:0]
	for _, sch := range b.schedules {
		if sch.ID != sid {
			kept = append(kept, sch)
		}
	}
	b.schedules = kept

	// Каскад: продукты удалённого расписания становятся непривязанными.
	for i := range b.products {
		if b.products[i].ScheduleID != nil && *b.products[i].ScheduleID == sid {
			b.products[i].ScheduleID = nil
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (b *fakeDeliverUS) restaurantDetail(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rid := urlID(r, "rid")
	detail := model.Restaurant{ID: rid, Name: "Casa Paco"}
	for _, p := range b.products {
		if p.RestaurantID == rid {
			detail.Products = append(detail.Products, p)
		}
	}
	for _, sch := range b.schedules {
		if sch.RestaurantID == rid {
			detail.Schedules = append(detail.Schedules, b.scheduleWithProducts(sch))
		}
	}
	writeJSON(w, http.StatusOK, detail)
}

func (b *fakeDeliverUS) restaurantOrders(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rid := urlID(r, "rid")
	out := make([]model.Order, 0)
	for _, order := range b.orders {
		if order.RestaurantID == rid {
			out = append(out, *order)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *fakeDeliverUS) restaurantAnalytics(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	writeJSON(w, http.StatusOK, b.analytics)
}

func newTestServices(t *testing.T, backend *fakeDeliverUS) *Services {
	t.Helper()

	ts := httptest.NewServer(backend.router())
	t.Cleanup(ts.Close)

	return New(transport.NewClient(ts.URL, time.Second))
}
