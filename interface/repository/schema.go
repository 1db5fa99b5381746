package repository

// Schema creates the tables of the program accounts.
const Schema = `
create table if not exists multisigs (
	address     text primary key,
	data        bytea not null,
	version     bigint not null default 0,
	update_time timestamptz not null
);

create table if not exists master_agents (
	address        text primary key,
	authority      text not null,
	mint           text not null unique,
	price          bigint not null,
	w_yield        bigint not null,
	trading_status smallint not null,
	max_supply     bigint not null,
	auto_relist    boolean not null,
	init_time      bigint not null,
	bump           smallint not null,
	create_time    timestamptz not null
);

create table if not exists token_metadata (
	mint                    text primary key,
	authority               text not null,
	metadata                text not null,
	master_edition          text not null,
	token_account           text not null,
	name                    text not null,
	symbol                  text not null,
	uri                     text not null,
	seller_fee_basis_points integer not null,
	decimals                smallint not null,
	supply                  bigint not null,
	create_time             timestamptz not null
);
`
