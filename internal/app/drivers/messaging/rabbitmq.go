package messaging

import (
	"hospital-records-service/internal/app/config"
	"log"
	"strconv"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	conn, err := amqp091.Dial(RabbitMQConnectionString(driverConfig.RabbitMQ))
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// RabbitMQConnectionString escapes the credentials and falls back to the AMQP
// default port when the configured one is not a number.
func RabbitMQConnectionString(rabbitConfig config.RabbitMQ) string {
	port, err := strconv.Atoi(rabbitConfig.Port)
	if err != nil {
		port = 5672
	}
	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     rabbitConfig.Host,
		Username: rabbitConfig.Username,
		Password: rabbitConfig.Password,
		Port:     port,
		Vhost:    "/",
	}
	return uri.String()
}
