package amadeus

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
)

// segmentTimeLayout is the local timestamp format used in segment endpoints.
const segmentTimeLayout = "2006-01-02T15:04:05"

// Normalize converts a raw offers payload into normalized flight records,
// in source offer order. Offers that fail extraction are logged and skipped;
// one bad offer never aborts the batch. A nil payload or an absent data
// sequence yields an empty slice.
func Normalize(resp *OffersResponse, log zerolog.Logger) []domain.FlightRecord {
	if resp == nil || len(resp.Data) == 0 {
		return []domain.FlightRecord{}
	}

	carriers := resp.Carriers()
	records := make([]domain.FlightRecord, 0, len(resp.Data))

	for _, offer := range resp.Data {
		record, err := normalizeOffer(offer, carriers)
		if err != nil {
			log.Warn().Err(err).Str("offer_id", offer.ID).Msg("Skipping offer")
			continue
		}
		records = append(records, record)
	}

	return records
}

// normalizeOffer converts a single offer to a flight record.
// Only the first itinerary (outbound leg) is considered.
func normalizeOffer(offer Offer, carriers map[string]string) (domain.FlightRecord, error) {
	if len(offer.Itineraries) == 0 {
		return domain.FlightRecord{}, fmt.Errorf("offer has no itineraries")
	}

	itin := offer.Itineraries[0]
	if len(itin.Segments) == 0 {
		return domain.FlightRecord{}, fmt.Errorf("itinerary has no segments")
	}

	first := itin.Segments[0]
	last := itin.Segments[len(itin.Segments)-1]

	price, err := decimal.NewFromString(offer.Price.Total)
	if err != nil {
		return domain.FlightRecord{}, &domain.ParseError{Field: "price", Value: offer.Price.Total, Err: err}
	}

	duration, err := domain.NewDurationInfo(itin.Duration)
	if err != nil {
		return domain.FlightRecord{}, err
	}

	layoverCity, layoverHours, err := layover(itin.Segments)
	if err != nil {
		return domain.FlightRecord{}, err
	}

	return domain.FlightRecord{
		Airline: domain.AirlineInfo{
			Code: first.CarrierCode,
			Name: carriers[first.CarrierCode],
		},
		Price:        price,
		Duration:     duration,
		Stops:        len(itin.Segments) - 1,
		LayoverCity:  layoverCity,
		LayoverHours: layoverHours,
		Departure:    first.Departure.At,
		Arrival:      last.Arrival.At,
	}, nil
}

// layover derives the first layover's airport and length in hours (one decimal)
// from the gap between the first segment's arrival and the second segment's
// departure. Single-segment itineraries have no layover.
func layover(segments []Segment) (string, float64, error) {
	if len(segments) < 2 {
		return "", 0, nil
	}

	arrival, err := time.Parse(segmentTimeLayout, segments[0].Arrival.At)
	if err != nil {
		return "", 0, &domain.ParseError{Field: "arrival", Value: segments[0].Arrival.At, Err: err}
	}
	departure, err := time.Parse(segmentTimeLayout, segments[1].Departure.At)
	if err != nil {
		return "", 0, &domain.ParseError{Field: "departure", Value: segments[1].Departure.At, Err: err}
	}

	hours := math.Round(departure.Sub(arrival).Hours()*10) / 10
	return segments[0].Arrival.IataCode, hours, nil
}
