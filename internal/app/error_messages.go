// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// festa server handlers and middleware.
//
// All Msg* constants are the messages written into the "error" field of
// non-2xx response bodies. The API speaks Portuguese, as do its clients.
package app

const (
	// MsgMissingIdentity is returned when nome or telefone is missing or
	// blank, or the body cannot be decoded.
	MsgMissingIdentity = "Nome e telefone são obrigatórios"

	// MsgPhoneTakenByOtherName is a format string; the argument is the phone
	// number the caller sent.
	MsgPhoneTakenByOtherName = "Já existe um usuário com este telefone (%s), mas nome diferente."

	MsgNameTakenByOtherPhone = "Já existe um usuário com este nome, mas usando outro telefone."

	// MsgUserNotAuthenticated is returned when no user has the phone, or its
	// name does not match the one sent.
	MsgUserNotAuthenticated = "Usuário não autenticado corretamente"

	MsgRegistrationFailed = "Erro ao validar ou registrar usuário"
	MsgListFoodsFailed    = "Erro ao buscar comidas e reservas"
	MsgReserveFailed      = "Erro ao reservar comida"
	MsgCancelFailed       = "Erro ao cancelar reserva"

	// MsgInvalidFoodID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidFoodID = "ID de comida inválido"

	MsgFoodNotFound        = "Comida não encontrada"
	MsgFoodSoldOut         = "Comida esgotada"
	MsgAlreadyReserved     = "Você já reservou esta comida"
	MsgReservationNotFound = "Reserva não encontrada"

	// MsgConcurrentUpdate is returned when the food kept changing under
	// concurrent requests and the retries ran out. The client may try again.
	MsgConcurrentUpdate = "Muitas reservas simultâneas, tente novamente"

	MsgInternalServerError = "Erro interno do servidor"
	MsgMethodNotAllowed    = "Método não permitido"
	MsgNotFound            = "Rota não encontrada"
	MsgRequestTimeout      = "Tempo limite da requisição excedido"
	MsgInvalidGzipBody     = "Corpo gzip inválido"
)
