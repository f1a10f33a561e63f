package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayplan/directory"
	"wayplan/services"
)

// locations is the static table every handler groups and resolves
// against. The planner itself takes it as a parameter.
var locations = directory.Static()

func LocationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": locations.All()})
}

// LocationSearchHandler searches the static table first and falls back
// to the Amadeus airport keyword search for destinations outside it.
func LocationSearchHandler(c *gin.Context) {
	q := c.Query("q")
	if len(q) < 2 {
		c.JSON(http.StatusOK, gin.H{"data": []directory.Entry{}})
		return
	}

	if hits := locations.Search(q); len(hits) > 0 {
		c.JSON(http.StatusOK, gin.H{"data": hits, "source": "directory"})
		return
	}

	amadeusClient := services.GetAmadeusClient()
	if !amadeusClient.Configured() {
		c.JSON(http.StatusOK, gin.H{"data": []directory.Entry{}})
		return
	}

	airports, err := amadeusClient.SearchAirports(q)
	if err != nil {
		log.Printf("⚠️  Amadeus airport search failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"data": []directory.Entry{}})
		return
	}

	entries := make([]directory.Entry, 0, len(airports))
	for _, a := range airports {
		entries = append(entries, directory.Entry{
			Code:    a.Code,
			Name:    a.Name,
			City:    a.City,
			Country: a.Country,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": entries, "source": "amadeus"})
}
