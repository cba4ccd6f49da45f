package events

import "encoding/json"

// Address is an event venue address.
type Address struct {
	ID         int64  `json:"id_adresse"`
	Street     string `json:"rue,omitempty"`
	City       string `json:"ville,omitempty"`
	PostalCode string `json:"code_postal,omitempty"`
	Country    string `json:"pays,omitempty"`
}

// Tariff is the pricing attached to an event.
type Tariff struct {
	ID       int64   `json:"id_tarif"`
	Amount   float64 `json:"montant"`
	Currency string  `json:"devise,omitempty"`
	Kind     string  `json:"type_tarif,omitempty"`
}

// Type is the event category.
type Type struct {
	ID          int64  `json:"id_type_event"`
	Name        string `json:"nom_type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Organizer identifies the user who created the event.
type Organizer struct {
	ID        int64  `json:"id_user"`
	LastName  string `json:"nom,omitempty"`
	FirstName string `json:"prenom,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Event is the normalized client-side event model. The backend answers with
// two diverging field spellings (camelCase and snake_case, depending on the
// endpoint); UnmarshalJSON folds both into this one shape.
type Event struct {
	ID          int64  `json:"id_event"`
	Title       string `json:"titre_event"`
	Description string `json:"description"`
	StartDate   string `json:"date_debut"`
	EndDate     string `json:"date_fin"`
	Image       string `json:"image,omitempty"`
	Capacity    int    `json:"nb_place"`

	AddressID   int64 `json:"adresse_id_adresse,omitempty"`
	OrganizerID int64 `json:"organisateur_id_user,omitempty"`
	TariffID    int64 `json:"tarif_id_tarif,omitempty"`
	TypeID      int64 `json:"type_event_id_type_event,omitempty"`

	Address   *Address   `json:"adresse,omitempty"`
	Organizer *Organizer `json:"organisateur,omitempty"`
	Tariff    *Tariff    `json:"tarif,omitempty"`
	Type      *Type      `json:"type_event,omitempty"`
}

// apiEvent mirrors both response spellings side by side. All fields are
// pointers so absence is distinguishable from zero.
type apiEvent struct {
	IDEvent   *int64  `json:"idEvent"`
	IDSnake   *int64  `json:"id_event"`
	Titre     *string `json:"titreEvent"`
	TitreAlt  *string `json:"titre_event"`
	Desc      *string `json:"description"`
	DateDeb   *string `json:"dateDebut"`
	DateDebAl *string `json:"date_debut"`
	DateFin   *string `json:"dateFin"`
	DateFinAl *string `json:"date_fin"`
	Image     *string `json:"image"`
	NbPlace   *int    `json:"nbPlace"`
	NbPlaceAl *int    `json:"nb_place"`

	AdresseID      *int64 `json:"adresse_id_adresse"`
	OrganisateurID *int64 `json:"organisateur_id_user"`
	TarifID        *int64 `json:"tarif_id_tarif"`
	TypeEventID    *int64 `json:"type_event_id_type_event"`

	Adresse      *apiAddress   `json:"adresse"`
	Tarif        *apiTariff    `json:"tarif"`
	TypeEvent    *apiType      `json:"type_event"`
	Organisateur *apiOrganizer `json:"organisateur"`
}

type apiAddress struct {
	IDAdresse  *int64  `json:"idAdresse"`
	IDSnake    *int64  `json:"id_adresse"`
	Rue        *string `json:"rue"`
	Ville      *string `json:"ville"`
	CodePostal *string `json:"codePostal"`
	CodeSnake  *string `json:"code_postal"`
	Pays       *string `json:"pays"`
}

type apiTariff struct {
	IDTarif     *int64   `json:"idTarif"`
	IDSnake     *int64   `json:"id_tarif"`
	Prix        *float64 `json:"prix"`
	Montant     *float64 `json:"montant"`
	IsPromotion *bool    `json:"is_promotion"`
	TypeTarif   *string  `json:"type_tarif"`
}

type apiType struct {
	IDTypeEvent *int64  `json:"idTypeEvent"`
	IDSnake     *int64  `json:"id_type_event"`
	NomType     *string `json:"nomType"`
	NomSnake    *string `json:"nom_type"`
	Description *string `json:"description"`
}

type apiOrganizer struct {
	IDUser  *int64  `json:"idUser"`
	IDSnake *int64  `json:"id_user"`
	Nom     *string `json:"nom"`
	Prenom  *string `json:"prenom"`
	Email   *string `json:"email"`
}

// UnmarshalJSON normalizes either response spelling into the canonical
// Event shape.
func (e *Event) UnmarshalJSON(data []byte) error {
	var api apiEvent
	if err := json.Unmarshal(data, &api); err != nil {
		return err
	}
	*e = api.normalize()
	return nil
}

func (a apiEvent) normalize() Event {
	event := Event{
		ID:          pickInt64(a.IDEvent, a.IDSnake),
		Title:       pickString(a.Titre, a.TitreAlt),
		Description: pickString(a.Desc),
		StartDate:   pickString(a.DateDeb, a.DateDebAl),
		EndDate:     pickString(a.DateFin, a.DateFinAl),
		Image:       pickString(a.Image),
		Capacity:    pickInt(a.NbPlace, a.NbPlaceAl),
		AddressID:   pickInt64(a.AdresseID),
		OrganizerID: pickInt64(a.OrganisateurID),
		TariffID:    pickInt64(a.TarifID),
		TypeID:      pickInt64(a.TypeEventID),
	}

	switch {
	case a.Tarif != nil:
		kind := pickString(a.Tarif.TypeTarif)
		if kind == "" {
			kind = "Standard"
			if a.Tarif.IsPromotion != nil && *a.Tarif.IsPromotion {
				kind = "Promotion"
			}
		}
		event.Tariff = &Tariff{
			ID:       pickInt64(a.Tarif.IDTarif, a.Tarif.IDSnake),
			Amount:   pickFloat64(a.Tarif.Prix, a.Tarif.Montant),
			Currency: "EUR",
			Kind:     kind,
		}
	case event.TariffID != 0:
		event.Tariff = &Tariff{ID: event.TariffID, Currency: "EUR"}
	}

	switch {
	case a.TypeEvent != nil:
		name := pickString(a.TypeEvent.NomType, a.TypeEvent.NomSnake)
		if name == "" {
			name = "Non spécifié"
		}
		event.Type = &Type{
			ID:          pickInt64(a.TypeEvent.IDTypeEvent, a.TypeEvent.IDSnake),
			Name:        name,
			Description: pickString(a.TypeEvent.Description),
		}
	case event.TypeID != 0:
		event.Type = &Type{ID: event.TypeID, Name: "Non spécifié"}
	}

	if a.Adresse != nil {
		event.Address = &Address{
			ID:         pickInt64(a.Adresse.IDAdresse, a.Adresse.IDSnake),
			Street:     pickString(a.Adresse.Rue),
			City:       pickString(a.Adresse.Ville),
			PostalCode: pickString(a.Adresse.CodePostal, a.Adresse.CodeSnake),
			Country:    pickString(a.Adresse.Pays),
		}
	}

	if a.Organisateur != nil {
		event.Organizer = &Organizer{
			ID:        pickInt64(a.Organisateur.IDUser, a.Organisateur.IDSnake),
			LastName:  pickString(a.Organisateur.Nom),
			FirstName: pickString(a.Organisateur.Prenom),
			Email:     pickString(a.Organisateur.Email),
		}
	}

	return event
}

func pickInt64(vals ...*int64) int64 {
	for _, v := range vals {
		if v != nil && *v != 0 {
			return *v
		}
	}
	return 0
}

func pickInt(vals ...*int) int {
	for _, v := range vals {
		if v != nil && *v != 0 {
			return *v
		}
	}
	return 0
}

func pickFloat64(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil && *v != 0 {
			return *v
		}
	}
	return 0
}

func pickString(vals ...*string) string {
	for _, v := range vals {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
